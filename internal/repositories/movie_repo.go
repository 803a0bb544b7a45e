package repositories

import "watchly/internal/models"

// MovieRepository defines the interface for watchlist data access.
// Every lookup is scoped to the owning user so a caller can never
// reach another user's entries.
type MovieRepository interface {
	Create(movie *models.Movie) error
	GetByUser(userID string) ([]models.Movie, error)
	GetFavoritesByUser(userID string) ([]models.Movie, error)
	GetByUserAndTmdbID(userID, tmdbID string) (*models.Movie, error)
	GetByIDAndUser(id, userID string) (*models.Movie, error)
	Update(movie *models.Movie) error
	Delete(id, userID string) error
}
