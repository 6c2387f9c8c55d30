// Package adapters provides the repository implementations for the users feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ghostmaruko/myFlix-API/internal/feature/users/domain/entity"
	"github.com/ghostmaruko/myFlix-API/internal/feature/users/usecase"
)

// userGorm is the GORM implementation of the usecase.Repository interface.
// Requires a *gorm.DB opened with TranslateError so duplicate-key violations
// surface as gorm.ErrDuplicatedKey across engines.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check that userGorm implements usecase.Repository.
var _ usecase.Repository = (*userGorm)(nil)

// NewUserGorm creates a new userGorm instance with the given gorm.DB connection.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create adds a user to the database.
// Returns usecase.ErrUsernameTaken if the username already exists.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrUsernameTaken
		}
		return err
	}
	return nil
}

// FindByUsername retrieves a user by exact username, favorites included.
// Returns usecase.ErrUserNotFound if absent.
func (r *userGorm) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var u entity.User
	err := r.db.WithContext(ctx).
		Preload("Favorites").
		Where("username = ?", username).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// ResolveUsername reports whether a username still maps to a live user record.
// Used by the token verification middleware so a deleted user's stale token
// stops authorizing.
func (r *userGorm) ResolveUsername(ctx context.Context, username string) error {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

// FindAll retrieves every user, favorites included.
func (r *userGorm) FindAll(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	if err := r.db.WithContext(ctx).Preload("Favorites").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update applies the non-nil fields of changes in a single statement, so
// concurrent updates of the same record resolve last-write-wins per field.
// Returns usecase.ErrUserNotFound if no row matched.
func (r *userGorm) Update(ctx context.Context, username string, changes usecase.ProfileChanges) (*entity.User, error) {
	fields := map[string]any{}
	if changes.Username != nil {
		fields["username"] = *changes.Username
	}
	if changes.PasswordHash != nil {
		fields["password_hash"] = *changes.PasswordHash
	}
	if changes.Email != nil {
		fields["email"] = *changes.Email
	}
	if changes.Birthday != nil {
		fields["birthday"] = *changes.Birthday
	}

	target := username
	if changes.Username != nil {
		target = *changes.Username
	}

	if len(fields) == 0 {
		return r.FindByUsername(ctx, username)
	}

	res := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("username = ?", username).
		Updates(fields)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, usecase.ErrUsernameTaken
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, usecase.ErrUserNotFound
	}
	return r.FindByUsername(ctx, target)
}

// Delete removes the user matching username case-insensitively, along with
// their favorites. The case folding is specific to deletion; every other
// lookup is exact.
func (r *userGorm) Delete(ctx context.Context, username string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u entity.User
		err := tx.Where("lower(username) = lower(?)", username).First(&u).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrUserNotFound
			}
			return err
		}
		if err := tx.Where("user_id = ?", u.ID).Delete(&entity.FavoriteMovie{}).Error; err != nil {
			return err
		}
		return tx.Delete(&u).Error
	})
}

// AddFavorite inserts the (user, movie) pair with ON CONFLICT DO NOTHING, so
// adding a present id is a no-op at the storage layer. Returns the current
// record either way.
func (r *userGorm) AddFavorite(ctx context.Context, username, movieID string) (*entity.User, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u entity.User
		if err := tx.Where("username = ?", username).First(&u).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrUserNotFound
			}
			return err
		}
		fav := entity.FavoriteMovie{UserID: u.ID, MovieID: movieID}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&fav).Error
	})
	if err != nil {
		return nil, err
	}
	return r.FindByUsername(ctx, username)
}

// RemoveFavorite deletes the (user, movie) pair if present; removing an
// absent id is a no-op. Returns the current record either way.
func (r *userGorm) RemoveFavorite(ctx context.Context, username, movieID string) (*entity.User, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u entity.User
		if err := tx.Where("username = ?", username).First(&u).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrUserNotFound
			}
			return err
		}
		return tx.Where("user_id = ? AND movie_id = ?", u.ID, movieID).
			Delete(&entity.FavoriteMovie{}).Error
	})
	if err != nil {
		return nil, err
	}
	return r.FindByUsername(ctx, username)
}
