package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"watchly/internal/models"
	"watchly/internal/repositories"
)

// EventPublisher publishes watchlist activity events. Implemented by
// pkg/rabbitmq.Client; a nil publisher disables events.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// AddMovieInput carries the fields a client submits when adding a
// catalog item to their watchlist.
type AddMovieInput struct {
	TmdbID      string
	Title       string
	Status      string
	ReleaseYear string
	Poster      string
	ImdbRating  string
}

// UpdateMovieInput is a partial patch. Nil fields are left unchanged.
type UpdateMovieInput struct {
	Status     *string
	Rating     *int
	Comments   *string
	IsFavorite *bool
}

// WatchlistService handles business logic for per-user watchlists.
type WatchlistService struct {
	movieRepo repositories.MovieRepository
	events    EventPublisher
}

// NewWatchlistService creates a new WatchlistService. The publisher
// may be nil, in which case activity events are skipped.
func NewWatchlistService(movieRepo repositories.MovieRepository, events EventPublisher) *WatchlistService {
	return &WatchlistService{
		movieRepo: movieRepo,
		events:    events,
	}
}

// AddMovie creates a new watchlist entry for the user. Adding the
// same catalog item twice fails with ErrDuplicateMovie; the storage
// layer's unique index backs this check against concurrent inserts.
func (s *WatchlistService) AddMovie(userID string, input AddMovieInput) (*models.Movie, error) {
	if existing, err := s.movieRepo.GetByUserAndTmdbID(userID, input.TmdbID); err == nil && existing != nil {
		return nil, ErrDuplicateMovie
	}

	movie := &models.Movie{
		UserID:      userID,
		TmdbID:      input.TmdbID,
		Title:       input.Title,
		ReleaseYear: input.ReleaseYear,
		Poster:      input.Poster,
		ImdbRating:  input.ImdbRating,
		Status:      input.Status,
		IsFavorite:  false,
	}
	if err := s.movieRepo.Create(movie); err != nil {
		return nil, fmt.Errorf("failed to add movie: %w", err)
	}

	s.publishEvent("movie.added", movie)
	return movie, nil
}

// GetMovies retrieves all watchlist entries owned by the user.
func (s *WatchlistService) GetMovies(userID string) ([]models.Movie, error) {
	return s.movieRepo.GetByUser(userID)
}

// GetFavorites retrieves the user's entries with the favorite flag set.
func (s *WatchlistService) GetFavorites(userID string) ([]models.Movie, error) {
	return s.movieRepo.GetFavoritesByUser(userID)
}

// UpdateMovie applies a partial patch to an entry the user owns.
// Entries owned by someone else are indistinguishable from
// nonexistent ones.
func (s *WatchlistService) UpdateMovie(userID, movieID string, input UpdateMovieInput) (*models.Movie, error) {
	movie, err := s.movieRepo.GetByIDAndUser(movieID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to load movie %s: %w", movieID, err)
	}

	if input.Status != nil {
		movie.Status = *input.Status
	}
	if input.Rating != nil {
		movie.Rating = *input.Rating
	}
	if input.Comments != nil {
		movie.Comments = *input.Comments
	}
	if input.IsFavorite != nil {
		movie.IsFavorite = *input.IsFavorite
	}

	if err := s.movieRepo.Update(movie); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to update movie %s: %w", movieID, err)
	}
	return movie, nil
}

// DeleteMovie removes an entry the user owns, under the same
// ownership rule as UpdateMovie.
func (s *WatchlistService) DeleteMovie(userID, movieID string) error {
	if err := s.movieRepo.Delete(movieID, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMovieNotFound
		}
		return fmt.Errorf("failed to delete movie %s: %w", movieID, err)
	}

	s.publishEvent("movie.deleted", &models.Movie{ID: movieID, UserID: userID})
	return nil
}

// publishEvent emits a watchlist activity event. Publish failures are
// logged and never fail the request.
func (s *WatchlistService) publishEvent(routingKey string, movie *models.Movie) {
	if s.events == nil {
		return
	}

	body, err := json.Marshal(map[string]interface{}{
		"movieId": movie.ID,
		"userId":  movie.UserID,
		"tmdbId":  movie.TmdbID,
		"title":   movie.Title,
	})
	if err != nil {
		log.Printf("Failed to marshal watchlist event: %v", err)
		return
	}

	if err := s.events.Publish("watchlist", routingKey, body); err != nil {
		log.Printf("Warning: Failed to publish %s event for movie %s: %v", routingKey, movie.ID, err)
	}
}
