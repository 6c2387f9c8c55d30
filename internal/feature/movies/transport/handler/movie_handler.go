// Package handler provides the HTTP handlers for the movies catalog.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ghostmaruko/myFlix-API/internal/api"
	"github.com/ghostmaruko/myFlix-API/internal/feature/movies/domain/entity"
	"github.com/ghostmaruko/myFlix-API/internal/feature/movies/usecase"
)

// MovieUsecase defines the catalog reads consumed by this handler.
type MovieUsecase interface {
	List(ctx context.Context) ([]entity.Movie, error)
	GetByTitle(ctx context.Context, title string) (*entity.Movie, error)
	GetGenre(ctx context.Context, name string) (*entity.Genre, error)
	GetDirector(ctx context.Context, name string) (*entity.Director, error)
}

// MovieHandler handles HTTP requests for catalog lookups.
type MovieHandler struct {
	movies MovieUsecase
}

// NewMovieHandler creates a new MovieHandler instance.
func NewMovieHandler(movies MovieUsecase) *MovieHandler {
	return &MovieHandler{movies: movies}
}

// List handles GET /movies. Public by project decision.
func (h *MovieHandler) List(c *gin.Context) {
	movies, err := h.movies.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "movie list failed")
		return
	}
	c.JSON(http.StatusOK, movies)
}

// GetByTitle handles GET /movies/:title.
func (h *MovieHandler) GetByTitle(c *gin.Context) {
	movie, err := h.movies.GetByTitle(c.Request.Context(), c.Param("title"))
	if err != nil {
		h.respondError(c, err, "movie fetch failed", "title", c.Param("title"))
		return
	}
	c.JSON(http.StatusOK, movie)
}

// GetGenre handles GET /genres/:name and returns the genre sub-object only.
func (h *MovieHandler) GetGenre(c *gin.Context) {
	genre, err := h.movies.GetGenre(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.respondError(c, err, "genre fetch failed", "name", c.Param("name"))
		return
	}
	c.JSON(http.StatusOK, genre)
}

// GetDirector handles GET /directors/:name and returns the director
// sub-object only.
func (h *MovieHandler) GetDirector(c *gin.Context) {
	director, err := h.movies.GetDirector(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.respondError(c, err, "director fetch failed", "name", c.Param("name"))
		return
	}
	c.JSON(http.StatusOK, director)
}

func (h *MovieHandler) respondError(c *gin.Context, err error, msg string, args ...any) {
	if errors.Is(err, usecase.ErrMovieNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "not found"})
		return
	}
	slog.Error(msg, append([]any{"error", err}, args...)...)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
}
