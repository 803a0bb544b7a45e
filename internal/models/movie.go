package models

import "time"

// Watch statuses a movie can be in.
const (
	StatusWantToWatch = "WANT_TO_WATCH"
	StatusWatched     = "WATCHED"
)

// Movie is a single watchlist entry owned by a user. The
// (user_id, tmdb_id) unique index backs the no-duplicates rule in
// addition to the service-level check. Deletes are hard deletes so a
// removed movie can be added again.
type Movie struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID      string    `json:"userId" gorm:"type:varchar(36);uniqueIndex:idx_user_tmdb"`
	TmdbID      string    `json:"tmdbId" gorm:"type:varchar(36);uniqueIndex:idx_user_tmdb" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	ReleaseYear string    `json:"releaseYear" gorm:"type:varchar(8)"`
	Poster      string    `json:"poster"`
	ImdbRating  string    `json:"imdbRating" gorm:"type:varchar(16)"`
	Status      string    `json:"status" gorm:"type:varchar(16)" validate:"required,oneof=WANT_TO_WATCH WATCHED"`
	Rating      int       `json:"rating,omitempty" validate:"omitempty,min=1,max=10"`
	Comments    string    `json:"comments"`
	IsFavorite  bool      `json:"isFavorite"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
