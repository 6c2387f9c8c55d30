package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	authusecase "github.com/ghostmaruko/myFlix-API/internal/feature/auth/usecase"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	LoginFunc func(ctx context.Context, username, password string) (string, error)
}

func (m *mockAuthUsecase) Login(ctx context.Context, username, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	return "", errors.New("login failed") // Default: failure
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockLoginFunc  func(ctx context.Context, username, password string) (string, error)
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name:        "success: token issued",
			requestBody: gin.H{"username": "alice1", "password": "Pass123!"},
			mockLoginFunc: func(ctx context.Context, username, password string) (string, error) {
				return "signed-token", nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   gin.H{"token": "signed-token"},
		},
		{
			name:           "failure: missing password",
			requestBody:    gin.H{"username": "alice1"},
			mockLoginFunc:  nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid request"},
		},
		{
			name:        "failure: wrong credentials get the generic message",
			requestBody: gin.H{"username": "alice1", "password": "wrong"},
			mockLoginFunc: func(ctx context.Context, username, password string) (string, error) {
				return "", authusecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   gin.H{"error": "invalid username or password"},
		},
		{
			name:        "failure: unknown user gets the same message",
			requestBody: gin.H{"username": "nobody", "password": "Pass123!"},
			mockLoginFunc: func(ctx context.Context, username, password string) (string, error) {
				return "", authusecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   gin.H{"error": "invalid username or password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{LoginFunc: tt.mockLoginFunc}
			handler := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/login", handler.Login)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var got gin.H
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			for k, v := range tt.expectedBody {
				assert.Equal(t, v, got[k])
			}
		})
	}
}
