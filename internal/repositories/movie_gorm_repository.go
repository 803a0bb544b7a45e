package repositories

import (
	"errors"
	"fmt"

	"watchly/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMMovieRepository is a GORM implementation of MovieRepository.
type GORMMovieRepository struct {
	db *gorm.DB
}

// NewGORMMovieRepository creates a new instance of GORMMovieRepository.
func NewGORMMovieRepository(db *gorm.DB) *GORMMovieRepository {
	return &GORMMovieRepository{
		db: db,
	}
}

// Create creates a new watchlist entry in the database.
func (r *GORMMovieRepository) Create(movie *models.Movie) error {
	if movie.ID == "" {
		movie.ID = uuid.New().String()
	}
	if err := r.db.Create(movie).Error; err != nil {
		return fmt.Errorf("failed to create movie: %w", err)
	}
	return nil
}

// GetByUser retrieves all watchlist entries owned by a user.
func (r *GORMMovieRepository) GetByUser(userID string) ([]models.Movie, error) {
	var movies []models.Movie
	if err := r.db.Find(&movies, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get movies for user %s: %w", userID, err)
	}
	return movies, nil
}

// GetFavoritesByUser retrieves the favorite entries owned by a user.
func (r *GORMMovieRepository) GetFavoritesByUser(userID string) ([]models.Movie, error) {
	var movies []models.Movie
	if err := r.db.Find(&movies, "user_id = ? AND is_favorite = ?", userID, true).Error; err != nil {
		return nil, fmt.Errorf("failed to get favorite movies for user %s: %w", userID, err)
	}
	return movies, nil
}

// GetByUserAndTmdbID retrieves the entry a user holds for a given
// catalog id, if any.
func (r *GORMMovieRepository) GetByUserAndTmdbID(userID, tmdbID string) (*models.Movie, error) {
	var movie models.Movie
	if err := r.db.First(&movie, "user_id = ? AND tmdb_id = ?", userID, tmdbID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get movie by tmdb id %s: %w", tmdbID, err)
	}
	return &movie, nil
}

// GetByIDAndUser retrieves a single entry by its ID, scoped to the
// owning user. A miss and a foreign entry look the same to callers.
func (r *GORMMovieRepository) GetByIDAndUser(id, userID string) (*models.Movie, error) {
	var movie models.Movie
	if err := r.db.First(&movie, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get movie by ID %s: %w", id, err)
	}
	return &movie, nil
}

// Update updates an existing watchlist entry in the database.
func (r *GORMMovieRepository) Update(movie *models.Movie) error {
	res := r.db.Save(movie) // Save updates all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update movie: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete deletes a watchlist entry by its ID, scoped to the owner.
func (r *GORMMovieRepository) Delete(id, userID string) error {
	res := r.db.Delete(&models.Movie{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete movie: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
