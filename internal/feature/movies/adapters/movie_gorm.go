// Package adapters provides the repository implementations for the movies catalog.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ghostmaruko/myFlix-API/internal/feature/movies/domain/entity"
	"github.com/ghostmaruko/myFlix-API/internal/feature/movies/usecase"
)

// movieGorm is the GORM implementation of the usecase.Repository interface.
type movieGorm struct {
	db *gorm.DB
}

// Compile-time check that movieGorm implements usecase.Repository.
var _ usecase.Repository = (*movieGorm)(nil)

// NewMovieGorm creates a new movieGorm instance with the given gorm.DB connection.
func NewMovieGorm(db *gorm.DB) *movieGorm {
	return &movieGorm{db: db}
}

// FindAll retrieves every movie in the catalog.
func (r *movieGorm) FindAll(ctx context.Context) ([]entity.Movie, error) {
	var movies []entity.Movie
	if err := r.db.WithContext(ctx).Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

// FindByTitle retrieves the movie with the exact title.
func (r *movieGorm) FindByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	return r.findOne(ctx, "title = ?", title)
}

// FindByGenreName retrieves a movie whose genre matches name.
func (r *movieGorm) FindByGenreName(ctx context.Context, name string) (*entity.Movie, error) {
	return r.findOne(ctx, "genre_name = ?", name)
}

// FindByDirectorName retrieves a movie whose director matches name.
func (r *movieGorm) FindByDirectorName(ctx context.Context, name string) (*entity.Movie, error) {
	return r.findOne(ctx, "director_name = ?", name)
}

func (r *movieGorm) findOne(ctx context.Context, query string, arg any) (*entity.Movie, error) {
	var m entity.Movie
	if err := r.db.WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

// UpdateImageURL rewrites the stored image reference of one movie.
func (r *movieGorm) UpdateImageURL(ctx context.Context, id, imageURL string) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Movie{}).
		Where("id = ?", id).
		Update("image_url", imageURL)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrMovieNotFound
	}
	return nil
}
