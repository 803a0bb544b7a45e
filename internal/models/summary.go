package models

// MovieSummary is the normalized shape returned for TMDB search and
// detail lookups. Optional fields are empty strings when the
// provider omits them.
type MovieSummary struct {
	TmdbID      string `json:"tmdbId"`
	Title       string `json:"title"`
	ReleaseYear string `json:"releaseYear"`
	Poster      string `json:"poster"`
	ImdbRating  string `json:"imdbRating"`
}
