package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ghostmaruko/myFlix-API/internal/feature/users/domain/entity"
	"github.com/ghostmaruko/myFlix-API/internal/platform/password"
)

const minUsernameLength = 5

// Repository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type Repository interface {
	// Create persists a new user. Returns ErrUsernameTaken if the username
	// already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves a user by exact (case-sensitive) username.
	// Returns ErrUserNotFound if absent.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindAll retrieves every user.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Update applies the non-nil fields of changes to the named user and
	// returns the updated record. Returns ErrUserNotFound if absent.
	Update(ctx context.Context, username string, changes ProfileChanges) (*entity.User, error)

	// Delete removes the user matching username case-insensitively.
	// Returns ErrUserNotFound if absent.
	Delete(ctx context.Context, username string) error

	// AddFavorite adds movieID to the user's favorites set. Adding a present
	// id is a no-op; the current record is returned either way.
	AddFavorite(ctx context.Context, username, movieID string) (*entity.User, error)

	// RemoveFavorite removes movieID from the user's favorites set. Removing
	// an absent id is a no-op; the current record is returned either way.
	RemoveFavorite(ctx context.Context, username, movieID string) (*entity.User, error)
}

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	Birthday *time.Time
}

// ProfileChanges carries a partial profile update. Nil fields are untouched.
// PasswordHash is set by the usecase; callers supply Password in plaintext and
// it never reaches the repository.
type ProfileChanges struct {
	Username     *string
	PasswordHash *string
	Email        *string
	Birthday     *time.Time
}

// userUsecase implements registration, profile management and the favorites
// set manager, with ownership enforcement on every user-scoped operation.
type userUsecase struct {
	users Repository
}

// NewUserUsecase creates a new userUsecase instance.
func NewUserUsecase(users Repository) *userUsecase {
	return &userUsecase{users: users}
}

// validateRegistration is the usecase backstop behind transport binding.
func validateRegistration(in RegisterInput) error {
	if len(in.Username) < minUsernameLength {
		return fmt.Errorf("%w: username must be at least %d characters", ErrInvalidInput, minUsernameLength)
	}
	for _, r := range in.Username {
		if !isAlphanumeric(r) {
			return fmt.Errorf("%w: username must be alphanumeric", ErrInvalidInput)
		}
	}
	if in.Password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	return nil
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// Register creates a new user with a hashed password.
func (u *userUsecase) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if err := validateRegistration(in); err != nil {
		return nil, err
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:     in.Username,
		PasswordHash: hash,
		Email:        in.Email,
		Birthday:     in.Birthday,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// List returns every registered user.
func (u *userUsecase) List(ctx context.Context) ([]*entity.User, error) {
	return u.users.FindAll(ctx)
}

// Get returns the claimed user's record, but only to its owner.
func (u *userUsecase) Get(ctx context.Context, identity, claimed string) (*entity.User, error) {
	if err := authorizeOwner(identity, claimed, false); err != nil {
		return nil, err
	}
	return u.users.FindByUsername(ctx, claimed)
}

// UpdateInput carries a partial profile update. Nil fields are untouched.
type UpdateInput struct {
	Username *string
	Password *string
	Email    *string
	Birthday *time.Time
}

// Update applies a partial profile update on behalf of the owner. A supplied
// plaintext password is hashed here; the repository only ever sees the digest.
func (u *userUsecase) Update(ctx context.Context, identity, claimed string, in UpdateInput) (*entity.User, error) {
	if err := authorizeOwner(identity, claimed, false); err != nil {
		return nil, err
	}

	changes := ProfileChanges{
		Username: in.Username,
		Email:    in.Email,
		Birthday: in.Birthday,
	}
	if in.Password != nil {
		if *in.Password == "" {
			return nil, fmt.Errorf("%w: password must not be empty", ErrInvalidInput)
		}
		hash, err := password.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		changes.PasswordHash = &hash
	}
	return u.users.Update(ctx, claimed, changes)
}

// Delete removes the claimed user's account. This is the one path where the
// ownership comparison folds case, matching the store's delete semantics.
func (u *userUsecase) Delete(ctx context.Context, identity, claimed string) error {
	if err := authorizeOwner(identity, claimed, true); err != nil {
		return err
	}
	return u.users.Delete(ctx, claimed)
}

// AddFavorite adds a movie id to the owner's favorites set. Idempotent.
func (u *userUsecase) AddFavorite(ctx context.Context, identity, claimed, movieID string) (*entity.User, error) {
	if err := authorizeOwner(identity, claimed, false); err != nil {
		return nil, err
	}
	return u.users.AddFavorite(ctx, claimed, movieID)
}

// RemoveFavorite removes a movie id from the owner's favorites set. Idempotent.
func (u *userUsecase) RemoveFavorite(ctx context.Context, identity, claimed, movieID string) (*entity.User, error) {
	if err := authorizeOwner(identity, claimed, false); err != nil {
		return nil, err
	}
	return u.users.RemoveFavorite(ctx, claimed, movieID)
}
