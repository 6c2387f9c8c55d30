package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/ghostmaruko/myFlix-API/internal/feature/users/domain/entity"
	usersusecase "github.com/ghostmaruko/myFlix-API/internal/feature/users/usecase"
	"github.com/ghostmaruko/myFlix-API/internal/platform/password"
)

// UserRepository is the slice of the user store the login path needs.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// FindByUsername retrieves a user by exact username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

// TokenIssuer mints a signed identity token for a verified user.
type TokenIssuer interface {
	// GenerateToken creates a signed, time-bounded token claiming username.
	GenerateToken(username string) (string, error)
}

// authUsecase composes the local credential verifier with the token issuer.
type authUsecase struct {
	users  UserRepository
	issuer TokenIssuer
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, issuer TokenIssuer) *authUsecase {
	return &authUsecase{users: users, issuer: issuer}
}

// Login verifies a username/password pair and returns a signed token on
// success. Unknown user and wrong password both collapse into
// ErrInvalidCredentials, and a dummy bcrypt comparison runs on the
// missing-user path so response timing does not separate the two.
func (u *authUsecase) Login(ctx context.Context, username, plaintext string) (string, error) {
	user, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, usersusecase.ErrUserNotFound) {
			password.VerifyDummy(plaintext)
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !password.Verify(plaintext, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := u.issuer.GenerateToken(user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
