package tmdb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"watchly/pkg/tmdb"

	"github.com/stretchr/testify/assert"
)

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "test_api_key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "matrix", r.URL.Query().Get("query"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"results": [
				{"id": 603, "title": "The Matrix", "release_date": "1999-03-30", "poster_path": "/matrix.jpg", "vote_average": 8.2},
				{"id": 999, "title": "Obscure Matrix Documentary", "release_date": "", "poster_path": "", "vote_average": 0}
			]
		}`))
	}))
	defer server.Close()

	client := tmdb.NewClientWithBaseURL("test_api_key", server.URL)
	movies, err := client.Search(context.Background(), "matrix")
	assert.NoError(t, err)
	assert.Len(t, movies, 2)

	assert.Equal(t, "603", movies[0].TmdbID)
	assert.Equal(t, "The Matrix", movies[0].Title)
	assert.Equal(t, "1999", movies[0].ReleaseYear)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/matrix.jpg", movies[0].Poster)
	assert.Equal(t, "8.2", movies[0].ImdbRating)

	// No poster path upstream means no constructed URL, and missing
	// date/rating stay empty.
	assert.Equal(t, "", movies[1].ReleaseYear)
	assert.Equal(t, "", movies[1].Poster)
	assert.Equal(t, "", movies[1].ImdbRating)
}

func TestClient_GetByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/550", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 550, "title": "Fight Club", "release_date": "1999-10-15", "poster_path": "/fc.jpg", "vote_average": 8.4}`))
	}))
	defer server.Close()

	client := tmdb.NewClientWithBaseURL("test_api_key", server.URL)
	movie, err := client.GetByID(context.Background(), "550")
	assert.NoError(t, err)
	assert.Equal(t, "550", movie.TmdbID)
	assert.Equal(t, "Fight Club", movie.Title)
	assert.Equal(t, "1999", movie.ReleaseYear)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/fc.jpg", movie.Poster)
	assert.Equal(t, "8.4", movie.ImdbRating)
}

func TestClient_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := tmdb.NewClientWithBaseURL("test_api_key", server.URL)

	_, err := client.Search(context.Background(), "matrix")
	assert.ErrorIs(t, err, tmdb.ErrUpstream)

	_, err = client.GetByID(context.Background(), "550")
	assert.ErrorIs(t, err, tmdb.ErrUpstream)
}

func TestClient_UnreachableUpstream(t *testing.T) {
	// Point at a closed server to simulate a network failure.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := tmdb.NewClientWithBaseURL("test_api_key", server.URL)
	_, err := client.Search(context.Background(), "matrix")
	assert.ErrorIs(t, err, tmdb.ErrUpstream)
}
