package repositories

import (
	"sync"

	"watchly/internal/models"

	"github.com/google/uuid"
)

// MockMovieRepository is an in-memory implementation of MovieRepository.
type MockMovieRepository struct {
	movies map[string]models.Movie
	mu     sync.RWMutex
}

// NewMockMovieRepository creates a new instance of MockMovieRepository.
func NewMockMovieRepository() *MockMovieRepository {
	return &MockMovieRepository{
		movies: make(map[string]models.Movie),
	}
}

// Create adds a new watchlist entry.
func (r *MockMovieRepository) Create(movie *models.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if movie.ID == "" {
		movie.ID = uuid.New().String()
	}
	r.movies[movie.ID] = *movie
	return nil
}

// GetByUser returns all entries owned by a user.
func (r *MockMovieRepository) GetByUser(userID string) ([]models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movieList := make([]models.Movie, 0)
	for _, m := range r.movies {
		if m.UserID == userID {
			movieList = append(movieList, m)
		}
	}
	return movieList, nil
}

// GetFavoritesByUser returns the favorite entries owned by a user.
func (r *MockMovieRepository) GetFavoritesByUser(userID string) ([]models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movieList := make([]models.Movie, 0)
	for _, m := range r.movies {
		if m.UserID == userID && m.IsFavorite {
			movieList = append(movieList, m)
		}
	}
	return movieList, nil
}

// GetByUserAndTmdbID returns the entry a user holds for a catalog id.
func (r *MockMovieRepository) GetByUserAndTmdbID(userID, tmdbID string) (*models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.movies {
		if m.UserID == userID && m.TmdbID == tmdbID {
			movie := m
			return &movie, nil
		}
	}
	return nil, ErrNotFound
}

// GetByIDAndUser returns an entry by its ID, scoped to the owner.
func (r *MockMovieRepository) GetByIDAndUser(id, userID string) (*models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movie, ok := r.movies[id]
	if !ok || movie.UserID != userID {
		return nil, ErrNotFound
	}
	return &movie, nil
}

// Update modifies an existing entry.
func (r *MockMovieRepository) Update(movie *models.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.movies[movie.ID]; !ok {
		return ErrNotFound
	}
	r.movies[movie.ID] = *movie
	return nil
}

// Delete removes an entry by its ID, scoped to the owner.
func (r *MockMovieRepository) Delete(id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	movie, ok := r.movies[id]
	if !ok || movie.UserID != userID {
		return ErrNotFound
	}
	delete(r.movies, id)
	return nil
}
