package usecase

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/ghostmaruko/myFlix-API/internal/feature/users/domain/entity"
)

// mockRepository is a mock implementation of the Repository interface.
type mockRepository struct {
	CreateFunc         func(ctx context.Context, user *entity.User) error
	FindByUsernameFunc func(ctx context.Context, username string) (*entity.User, error)
	FindAllFunc        func(ctx context.Context) ([]*entity.User, error)
	UpdateFunc         func(ctx context.Context, username string, changes ProfileChanges) (*entity.User, error)
	DeleteFunc         func(ctx context.Context, username string) error
	AddFavoriteFunc    func(ctx context.Context, username, movieID string) (*entity.User, error)
	RemoveFavoriteFunc func(ctx context.Context, username, movieID string) (*entity.User, error)
}

func (m *mockRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *mockRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockRepository) Update(ctx context.Context, username string, changes ProfileChanges) (*entity.User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, username, changes)
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) Delete(ctx context.Context, username string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, username)
	}
	return ErrUserNotFound
}

func (m *mockRepository) AddFavorite(ctx context.Context, username, movieID string) (*entity.User, error) {
	if m.AddFavoriteFunc != nil {
		return m.AddFavoriteFunc(ctx, username, movieID)
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) RemoveFavorite(ctx context.Context, username, movieID string) (*entity.User, error) {
	if m.RemoveFavoriteFunc != nil {
		return m.RemoveFavoriteFunc(ctx, username, movieID)
	}
	return nil, ErrUserNotFound
}

func TestUserUsecase_Register(t *testing.T) {
	t.Run("successful registration hashes the password", func(t *testing.T) {
		mockRepo := &mockRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				if user.PasswordHash == "" || user.PasswordHash == "Pass123!" {
					t.Errorf("password is not hashed")
				}
				if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Pass123!")); err != nil {
					t.Errorf("invalid bcrypt hash: %v", err)
				}
				return nil
			},
		}

		uc := NewUserUsecase(mockRepo)
		user, err := uc.Register(context.Background(), RegisterInput{
			Username: "alice1",
			Password: "Pass123!",
			Email:    "alice@example.com",
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Username != "alice1" {
			t.Errorf("expected username alice1, got %q", user.Username)
		}
	})

	t.Run("short username rejected", func(t *testing.T) {
		uc := NewUserUsecase(&mockRepository{})
		_, err := uc.Register(context.Background(), RegisterInput{
			Username: "al",
			Password: "Pass123!",
			Email:    "a@example.com",
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("non-alphanumeric username rejected", func(t *testing.T) {
		uc := NewUserUsecase(&mockRepository{})
		_, err := uc.Register(context.Background(), RegisterInput{
			Username: "alice!",
			Password: "Pass123!",
			Email:    "a@example.com",
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("empty password rejected", func(t *testing.T) {
		uc := NewUserUsecase(&mockRepository{})
		_, err := uc.Register(context.Background(), RegisterInput{
			Username: "alice1",
			Email:    "a@example.com",
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("duplicate username propagates ErrUsernameTaken", func(t *testing.T) {
		mockRepo := &mockRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return ErrUsernameTaken
			},
		}
		uc := NewUserUsecase(mockRepo)
		_, err := uc.Register(context.Background(), RegisterInput{
			Username: "alice1",
			Password: "Pass123!",
			Email:    "a@example.com",
		})
		if !errors.Is(err, ErrUsernameTaken) {
			t.Errorf("expected ErrUsernameTaken, got %v", err)
		}
	})
}

func TestUserUsecase_Get_Ownership(t *testing.T) {
	testUser := &entity.User{Username: "alice1"}
	mockRepo := &mockRepository{
		FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
			if username == "alice1" {
				return testUser, nil
			}
			return nil, ErrUserNotFound
		},
	}
	uc := NewUserUsecase(mockRepo)

	t.Run("owner can read own record", func(t *testing.T) {
		user, err := uc.Get(context.Background(), "alice1", "alice1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Username != "alice1" {
			t.Errorf("expected alice1, got %q", user.Username)
		}
	})

	t.Run("other identity denied, not not-found", func(t *testing.T) {
		_, err := uc.Get(context.Background(), "alice1", "bob2")
		if !errors.Is(err, ErrPermissionDenied) {
			t.Errorf("expected ErrPermissionDenied, got %v", err)
		}
	})

	t.Run("case difference denied outside the delete path", func(t *testing.T) {
		_, err := uc.Get(context.Background(), "alice1", "ALICE1")
		if !errors.Is(err, ErrPermissionDenied) {
			t.Errorf("expected ErrPermissionDenied, got %v", err)
		}
	})
}

func TestUserUsecase_Update(t *testing.T) {
	t.Run("plaintext password never reaches the repository", func(t *testing.T) {
		mockRepo := &mockRepository{
			UpdateFunc: func(ctx context.Context, username string, changes ProfileChanges) (*entity.User, error) {
				if changes.PasswordHash == nil {
					t.Fatal("expected password hash to be set")
				}
				if *changes.PasswordHash == "NewPass1" {
					t.Error("plaintext password reached the repository")
				}
				if err := bcrypt.CompareHashAndPassword([]byte(*changes.PasswordHash), []byte("NewPass1")); err != nil {
					t.Errorf("invalid bcrypt hash: %v", err)
				}
				return &entity.User{Username: username}, nil
			},
		}
		uc := NewUserUsecase(mockRepo)

		pw := "NewPass1"
		_, err := uc.Update(context.Background(), "alice1", "alice1", UpdateInput{Password: &pw})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty password rejected", func(t *testing.T) {
		uc := NewUserUsecase(&mockRepository{})
		pw := ""
		_, err := uc.Update(context.Background(), "alice1", "alice1", UpdateInput{Password: &pw})
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("non-owner denied before any repository call", func(t *testing.T) {
		mockRepo := &mockRepository{
			UpdateFunc: func(ctx context.Context, username string, changes ProfileChanges) (*entity.User, error) {
				t.Fatal("repository must not be called on denial")
				return nil, nil
			},
		}
		uc := NewUserUsecase(mockRepo)
		_, err := uc.Update(context.Background(), "alice1", "bob2", UpdateInput{})
		if !errors.Is(err, ErrPermissionDenied) {
			t.Errorf("expected ErrPermissionDenied, got %v", err)
		}
	})
}

func TestUserUsecase_Delete_FoldsCase(t *testing.T) {
	t.Run("case-insensitive match allowed on delete", func(t *testing.T) {
		deleted := ""
		mockRepo := &mockRepository{
			DeleteFunc: func(ctx context.Context, username string) error {
				deleted = username
				return nil
			},
		}
		uc := NewUserUsecase(mockRepo)

		if err := uc.Delete(context.Background(), "Alice1", "aLiCe1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted != "aLiCe1" {
			t.Errorf("expected claimed name passed through, got %q", deleted)
		}
	})

	t.Run("different user still denied", func(t *testing.T) {
		uc := NewUserUsecase(&mockRepository{})
		err := uc.Delete(context.Background(), "alice1", "bob2")
		if !errors.Is(err, ErrPermissionDenied) {
			t.Errorf("expected ErrPermissionDenied, got %v", err)
		}
	})
}

func TestUserUsecase_Favorites_Guarded(t *testing.T) {
	testUser := &entity.User{
		Username:  "alice1",
		Favorites: []entity.FavoriteMovie{{MovieID: "m42"}},
	}

	t.Run("owner may mutate favorites", func(t *testing.T) {
		mockRepo := &mockRepository{
			AddFavoriteFunc: func(ctx context.Context, username, movieID string) (*entity.User, error) {
				if username != "alice1" || movieID != "m42" {
					t.Errorf("unexpected args: %s %s", username, movieID)
				}
				return testUser, nil
			},
		}
		uc := NewUserUsecase(mockRepo)

		user, err := uc.AddFavorite(context.Background(), "alice1", "alice1", "m42")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := user.FavoriteMovieIDs(); len(got) != 1 || got[0] != "m42" {
			t.Errorf("unexpected favorites: %v", got)
		}
	})

	t.Run("non-owner denied on add and remove", func(t *testing.T) {
		uc := NewUserUsecase(&mockRepository{})

		if _, err := uc.AddFavorite(context.Background(), "alice1", "bob2", "m42"); !errors.Is(err, ErrPermissionDenied) {
			t.Errorf("expected ErrPermissionDenied, got %v", err)
		}
		if _, err := uc.RemoveFavorite(context.Background(), "alice1", "bob2", "m42"); !errors.Is(err, ErrPermissionDenied) {
			t.Errorf("expected ErrPermissionDenied, got %v", err)
		}
	})
}
