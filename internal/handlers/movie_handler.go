package handlers

import (
	"context"
	"errors"
	"log"
	"strings"

	"watchly/internal/models"
	"watchly/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// MetadataClient is the outbound movie catalog the search and detail
// routes proxy to. Implemented by pkg/tmdb.Client.
type MetadataClient interface {
	Search(ctx context.Context, query string) ([]models.MovieSummary, error)
	GetByID(ctx context.Context, tmdbID string) (*models.MovieSummary, error)
}

// MovieHandler handles HTTP requests for the watchlist and the
// catalog proxy.
type MovieHandler struct {
	watchlist *services.WatchlistService
	catalog   MetadataClient
	validate  *validator.Validate
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(watchlist *services.WatchlistService, catalog MetadataClient) *MovieHandler {
	return &MovieHandler{
		watchlist: watchlist,
		catalog:   catalog,
		validate:  validator.New(),
	}
}

// RegisterRoutes registers the movie routes with the Fiber app.
// Search and detail lookups are public; everything touching a user's
// watchlist sits behind authRequired. The literal paths must be
// registered before the parameterized ones.
func (h *MovieHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	movieRoutes := router.Group("/movies")
	movieRoutes.Get("/search", h.HandleSearch)
	movieRoutes.Get("/favorites", authRequired, h.HandleGetFavorites)
	movieRoutes.Get("/", authRequired, h.HandleGetMovies)
	movieRoutes.Post("/", authRequired, h.HandleAddMovie)
	movieRoutes.Put("/:id", authRequired, h.HandleUpdateMovie)
	movieRoutes.Delete("/:id", authRequired, h.HandleDeleteMovie)
	movieRoutes.Get("/:tmdbId", h.HandleMovieDetails)
}

// HandleSearch proxies a catalog search to TMDB.
func (h *MovieHandler) HandleSearch(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Search query is required",
		})
	}

	movies, err := h.catalog.Search(c.Context(), query)
	if err != nil {
		log.Printf("Error searching movies for %q: %v", query, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching movies",
		})
	}
	return c.JSON(movies)
}

// HandleMovieDetails proxies a single catalog lookup to TMDB.
func (h *MovieHandler) HandleMovieDetails(c *fiber.Ctx) error {
	tmdbID := c.Params("tmdbId")

	movie, err := h.catalog.GetByID(c.Context(), tmdbID)
	if err != nil {
		log.Printf("Error fetching movie details for %s: %v", tmdbID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching movie details",
		})
	}
	return c.JSON(movie)
}

// AddMovieRequest represents the request body for adding a movie.
type AddMovieRequest struct {
	TmdbID      string `json:"tmdbId" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Status      string `json:"status" validate:"required,oneof=WANT_TO_WATCH WATCHED"`
	ReleaseYear string `json:"releaseYear"`
	Poster      string `json:"poster"`
	ImdbRating  string `json:"imdbRating"`
}

// HandleAddMovie adds a movie to the authenticated user's watchlist.
func (h *MovieHandler) HandleAddMovie(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req AddMovieRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add movie request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	movie, err := h.watchlist.AddMovie(userID, services.AddMovieInput{
		TmdbID:      req.TmdbID,
		Title:       req.Title,
		Status:      req.Status,
		ReleaseYear: req.ReleaseYear,
		Poster:      req.Poster,
		ImdbRating:  req.ImdbRating,
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicateMovie) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Movie already exists in your list",
			})
		}
		log.Printf("Error adding movie: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add movie",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(movie)
}

// HandleGetMovies returns all watchlist entries for the
// authenticated user.
func (h *MovieHandler) HandleGetMovies(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	movies, err := h.watchlist.GetMovies(userID)
	if err != nil {
		log.Printf("Error fetching movies for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching movies",
		})
	}
	return c.JSON(movies)
}

// HandleGetFavorites returns the user's favorite entries.
func (h *MovieHandler) HandleGetFavorites(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	movies, err := h.watchlist.GetFavorites(userID)
	if err != nil {
		log.Printf("Error fetching favorite movies for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching favorite movies",
		})
	}
	return c.JSON(movies)
}

// UpdateMovieRequest represents the partial patch body for updates.
// Absent fields leave the stored values untouched.
type UpdateMovieRequest struct {
	Status     *string `json:"status"`
	Rating     *int    `json:"rating"`
	Comments   *string `json:"comments"`
	IsFavorite *bool   `json:"isFavorite"`
}

// HandleUpdateMovie applies a partial update to one of the user's
// watchlist entries.
func (h *MovieHandler) HandleUpdateMovie(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	movieID := c.Params("id")

	var req UpdateMovieRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update movie request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	// Pointer fields defeat validator's omitempty handling (a zero
	// rating would be skipped), so the bounds are checked by hand.
	if req.Status != nil && *req.Status != models.StatusWantToWatch && *req.Status != models.StatusWatched {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid status",
		})
	}
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 10) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Rating must be between 1 and 10",
		})
	}

	movie, err := h.watchlist.UpdateMovie(userID, movieID, services.UpdateMovieInput{
		Status:     req.Status,
		Rating:     req.Rating,
		Comments:   req.Comments,
		IsFavorite: req.IsFavorite,
	})
	if err != nil {
		if errors.Is(err, services.ErrMovieNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Movie not found",
			})
		}
		log.Printf("Error updating movie %s: %v", movieID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error updating movie",
		})
	}

	return c.JSON(movie)
}

// HandleDeleteMovie removes one of the user's watchlist entries.
func (h *MovieHandler) HandleDeleteMovie(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	movieID := c.Params("id")

	if err := h.watchlist.DeleteMovie(userID, movieID); err != nil {
		if errors.Is(err, services.ErrMovieNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Movie not found",
			})
		}
		log.Printf("Error deleting movie %s: %v", movieID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error deleting movie",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Movie deleted",
	})
}
