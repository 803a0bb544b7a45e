package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"watchly/internal/models"
)

// DefaultBaseURL is the TMDB v3 API root.
const DefaultBaseURL = "https://api.themoviedb.org/3"

const posterBaseURL = "https://image.tmdb.org/t/p/w500"

// ErrUpstream is returned when TMDB cannot be reached or answers
// with a non-success status. Callers surface it as a server error
// rather than defaulting silently.
var ErrUpstream = errors.New("tmdb request failed")

// Client is a thin HTTP client for the TMDB movie catalog.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient creates a Client against the production TMDB API.
func NewClient(apiKey string) *Client {
	return NewClientWithBaseURL(apiKey, DefaultBaseURL)
}

// NewClientWithBaseURL creates a Client against an arbitrary API
// root. Tests point this at a stub server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// movieResult is the provider's shape for a single movie, shared by
// the search and detail endpoints for the fields we consume.
type movieResult struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
}

type searchResponse struct {
	Results []movieResult `json:"results"`
}

// Search queries TMDB for movies matching the query and returns the
// normalized summaries.
func (c *Client) Search(ctx context.Context, query string) ([]models.MovieSummary, error) {
	u, err := url.Parse(c.baseURL + "/search/movie")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	q := u.Query()
	q.Set("api_key", c.apiKey)
	q.Set("query", query)
	u.RawQuery = q.Encode()

	var res searchResponse
	if err := c.get(ctx, u.String(), &res); err != nil {
		return nil, err
	}

	summaries := make([]models.MovieSummary, 0, len(res.Results))
	for _, r := range res.Results {
		summaries = append(summaries, normalize(r))
	}
	return summaries, nil
}

// GetByID fetches the details of a single movie by its TMDB id.
func (c *Client) GetByID(ctx context.Context, tmdbID string) (*models.MovieSummary, error) {
	u, err := url.Parse(c.baseURL + "/movie/" + url.PathEscape(tmdbID))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	q := u.Query()
	q.Set("api_key", c.apiKey)
	u.RawQuery = q.Encode()

	var res movieResult
	if err := c.get(ctx, u.String(), &res); err != nil {
		return nil, err
	}

	summary := normalize(res)
	return &summary, nil
}

// get performs a GET request and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return nil
}

// normalize maps the provider shape to a MovieSummary. Pure; all
// provider-schema knowledge lives here.
func normalize(r movieResult) models.MovieSummary {
	summary := models.MovieSummary{
		TmdbID: strconv.Itoa(r.ID),
		Title:  r.Title,
	}
	if r.ReleaseDate != "" {
		summary.ReleaseYear = strings.SplitN(r.ReleaseDate, "-", 2)[0]
	}
	if r.PosterPath != "" {
		summary.Poster = posterBaseURL + r.PosterPath
	}
	if r.VoteAverage != 0 {
		summary.ImdbRating = strconv.FormatFloat(r.VoteAverage, 'f', -1, 64)
	}
	return summary
}
