// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ghostmaruko/myFlix-API/internal/api"
	"github.com/ghostmaruko/myFlix-API/internal/feature/auth/transport/http/dto"
)

// AuthUsecase defines the login operation consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Login verifies credentials and returns a signed identity token.
	Login(ctx context.Context, username, password string) (string, error)
}

// AuthHandler handles HTTP requests for the login path.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles POST /login.
// - Binds the request JSON to LoginReq; 400 on binding failure
// - 401 with an undifferentiated message on any verification failure
// - 200 with the signed token on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// Never reveal whether the username or the password was wrong
		slog.Warn("login failed", "username", req.Username, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid username or password"})
		return
	}

	slog.Info("user login successful", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}
