// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ghostmaruko/myFlix-API/internal/api"
	"github.com/ghostmaruko/myFlix-API/internal/feature/users/domain/entity"
	"github.com/ghostmaruko/myFlix-API/internal/feature/users/transport/http/dto"
	"github.com/ghostmaruko/myFlix-API/internal/feature/users/usecase"
	jwtmw "github.com/ghostmaruko/myFlix-API/internal/platform/jwt"
)

// UserUsecase defines the user operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type UserUsecase interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Get(ctx context.Context, identity, claimed string) (*entity.User, error)
	Update(ctx context.Context, identity, claimed string, in usecase.UpdateInput) (*entity.User, error)
	Delete(ctx context.Context, identity, claimed string) error
	AddFavorite(ctx context.Context, identity, claimed, movieID string) (*entity.User, error)
	RemoveFavorite(ctx context.Context, identity, claimed, movieID string) (*entity.User, error)
}

// UserHandler handles HTTP requests for registration, profiles and favorites.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Register handles POST /users.
// - 422 with a field-level error list on invalid input
// - 409 if the username is already taken
// - 201 with the redacted record on success
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("registration validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, api.ValidationErrorResponse{Errors: api.FieldErrors(err)})
		return
	}

	in := usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Birthday: parseBirthday(req.Birthday),
	}
	user, err := h.users.Register(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err, "registration failed", "username", req.Username)
		return
	}

	slog.Info("user registered", "username", user.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.NewUserRes(user))
}

// List handles GET /users. Authentication required; records are redacted.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "user list failed")
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResList(users))
}

// Get handles GET /users/:username. Owner only.
func (h *UserHandler) Get(c *gin.Context) {
	identity, claimed, ok := h.identities(c)
	if !ok {
		return
	}

	user, err := h.users.Get(c.Request.Context(), identity, claimed)
	if err != nil {
		h.respondError(c, err, "user fetch failed", "username", claimed)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRes(user))
}

// Update handles PUT /users/:username. Owner only; partial update.
func (h *UserHandler) Update(c *gin.Context) {
	identity, claimed, ok := h.identities(c)
	if !ok {
		return
	}

	var req dto.UpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, api.ValidationErrorResponse{Errors: api.FieldErrors(err)})
		return
	}

	in := usecase.UpdateInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	}
	if req.Birthday != nil {
		in.Birthday = parseBirthday(*req.Birthday)
	}

	user, err := h.users.Update(c.Request.Context(), identity, claimed, in)
	if err != nil {
		h.respondError(c, err, "user update failed", "username", claimed)
		return
	}

	slog.Info("user updated", "username", user.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.NewUserRes(user))
}

// Delete handles DELETE /users/:username. Owner only; the username
// comparison folds case on this path, matching the store's delete semantics.
func (h *UserHandler) Delete(c *gin.Context) {
	identity, claimed, ok := h.identities(c)
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), identity, claimed); err != nil {
		h.respondError(c, err, "user delete failed", "username", claimed)
		return
	}

	slog.Info("user deleted", "username", claimed, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.MessageResponse{Message: claimed + " was deleted"})
}

// AddFavorite handles POST /users/:username/movies/:movieID. Owner only;
// idempotent, returns the current record.
func (h *UserHandler) AddFavorite(c *gin.Context) {
	identity, claimed, ok := h.identities(c)
	if !ok {
		return
	}

	user, err := h.users.AddFavorite(c.Request.Context(), identity, claimed, c.Param("movieID"))
	if err != nil {
		h.respondError(c, err, "favorite add failed", "username", claimed)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRes(user))
}

// RemoveFavorite handles DELETE /users/:username/movies/:movieID. Owner only;
// idempotent, returns the current record.
func (h *UserHandler) RemoveFavorite(c *gin.Context) {
	identity, claimed, ok := h.identities(c)
	if !ok {
		return
	}

	user, err := h.users.RemoveFavorite(c.Request.Context(), identity, claimed, c.Param("movieID"))
	if err != nil {
		h.respondError(c, err, "favorite remove failed", "username", claimed)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRes(user))
}

// identities extracts the token-verified identity and the path-claimed
// username. Only the verified identity authorizes anything; the claimed name
// is an input to the ownership check.
func (h *UserHandler) identities(c *gin.Context) (identity, claimed string, ok bool) {
	identity, ok = jwtmw.UsernameFromContext(c)
	if !ok {
		// Middleware should have set this; treat absence as unauthenticated.
		c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "missing bearer token"})
		return "", "", false
	}
	return identity, c.Param("username"), true
}

// respondError maps usecase errors onto the response taxonomy. Denied is
// distinct from not-found, which is distinct from unauthenticated; anything
// unrecognized is logged and returned as a generic 500.
func (h *UserHandler) respondError(c *gin.Context, err error, msg string, args ...any) {
	switch {
	case errors.Is(err, usecase.ErrUsernameTaken):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "username already exists"})
	case errors.Is(err, usecase.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "permission denied"})
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
	case errors.Is(err, usecase.ErrInvalidInput):
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error(msg, append([]any{"error", err}, args...)...)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}

// parseBirthday turns an already-validated date string into a time pointer.
func parseBirthday(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil
	}
	return &t
}
