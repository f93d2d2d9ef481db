package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-commerce-api/internal/store"
	"github.com/iliyamo/cinema-commerce-api/internal/utils"
)

// MovieStore is the persistence slice for the movie catalog endpoints.
// *repository.MovieRepo satisfies it.
type MovieStore interface {
	Create(ctx context.Context, item store.Item) error
	Get(ctx context.Context, tenantID, movieID string) (store.Item, error)
	ListByTenant(ctx context.Context, tenantID string) ([]store.Item, error)
}

// MovieHandler serves the movie catalog endpoints.
type MovieHandler struct {
	Movies MovieStore
}

// NewMovieHandler constructs a MovieHandler.
func NewMovieHandler(movies MovieStore) *MovieHandler {
	if movies == nil {
		panic("nil store passed to NewMovieHandler")
	}
	return &MovieHandler{Movies: movies}
}

// addMovieRequest is the validated input of POST /v1/movies.
type addMovieRequest struct {
	TenantID    string
	Title       string
	Genre       string
	ReleaseDate string
	Description string // optional
}

func parseAddMovieRequest(raw map[string]any) (addMovieRequest, string) {
	req := addMovieRequest{
		TenantID:    stringField(raw, "tenant_id"),
		Title:       stringField(raw, "title"),
		Genre:       stringField(raw, "genre"),
		ReleaseDate: stringField(raw, "release_date"),
		Description: stringField(raw, "description"),
	}
	if req.TenantID == "" || req.Title == "" || req.Genre == "" || req.ReleaseDate == "" {
		return req, "tenant_id, title, genre and release_date are required"
	}
	return req, ""
}

// ListMovies handles GET /v1/movies?tenant_id.
func (h *MovieHandler) ListMovies(c echo.Context) error {
	tenantID := c.QueryParam("tenant_id")
	if tenantID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant_id is required"})
	}
	items, err := h.Movies.ListByTenant(c.Request().Context(), tenantID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to list movies", "details": err.Error()})
	}
	return c.JSON(http.StatusOK, store.NormalizeItems(items))
}

// GetMovie handles GET /v1/movies/:movie_id?tenant_id.
func (h *MovieHandler) GetMovie(c echo.Context) error {
	movieID := c.Param("movie_id")
	tenantID := c.QueryParam("tenant_id")
	if movieID == "" || tenantID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "movie_id and tenant_id are required"})
	}
	item, err := h.Movies.Get(c.Request().Context(), tenantID, movieID)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch movie", "details": err.Error()})
	}
	return c.JSON(http.StatusOK, store.Normalize(item))
}

// AddMovie handles POST /v1/movies.
func (h *MovieHandler) AddMovie(c echo.Context) error {
	raw, err := bindJSON(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON body"})
	}
	req, msg := parseAddMovieRequest(raw)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	movieID := utils.NewID()
	item := store.Item{
		"tenant_id":    req.TenantID,
		"movie_id":     movieID,
		"title":        req.Title,
		"genre":        req.Genre,
		"release_date": req.ReleaseDate,
		"description":  req.Description,
		"created_at":   utils.TimestampUTC(),
	}
	if err := h.Movies.Create(c.Request().Context(), item); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to add movie", "details": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "movie added successfully", "movie_id": movieID})
}
