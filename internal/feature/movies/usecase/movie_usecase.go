package usecase

import (
	"context"
	"fmt"
	"path"

	"github.com/ghostmaruko/myFlix-API/internal/feature/movies/domain/entity"
)

// Repository abstracts the persistence layer for the movie catalog.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type Repository interface {
	// FindAll retrieves every movie.
	FindAll(ctx context.Context) ([]entity.Movie, error)

	// FindByTitle retrieves the movie with the exact title.
	// Returns ErrMovieNotFound if absent.
	FindByTitle(ctx context.Context, title string) (*entity.Movie, error)

	// FindByGenreName retrieves a movie whose genre has the given name.
	// Returns ErrMovieNotFound if absent.
	FindByGenreName(ctx context.Context, name string) (*entity.Movie, error)

	// FindByDirectorName retrieves a movie whose director has the given name.
	// Returns ErrMovieNotFound if absent.
	FindByDirectorName(ctx context.Context, name string) (*entity.Movie, error)

	// UpdateImageURL rewrites the stored image reference of one movie.
	UpdateImageURL(ctx context.Context, id, imageURL string) error
}

// movieUsecase serves catalog reads and normalizes image references to the
// configured base URL.
type movieUsecase struct {
	movies       Repository
	imageBaseURL string
}

// NewMovieUsecase creates a new movieUsecase instance. imageBaseURL may be
// empty, in which case image references are served as stored.
func NewMovieUsecase(movies Repository, imageBaseURL string) *movieUsecase {
	return &movieUsecase{movies: movies, imageBaseURL: imageBaseURL}
}

// normalizeImageURL rebases an image reference to the configured base,
// keeping only the file name of the stored URL.
func (u *movieUsecase) normalizeImageURL(imageURL string) string {
	if u.imageBaseURL == "" || imageURL == "" {
		return imageURL
	}
	return u.imageBaseURL + "/" + path.Base(imageURL)
}

// List returns the full catalog.
func (u *movieUsecase) List(ctx context.Context) ([]entity.Movie, error) {
	movies, err := u.movies.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range movies {
		movies[i].ImageURL = u.normalizeImageURL(movies[i].ImageURL)
	}
	return movies, nil
}

// GetByTitle returns the movie with the exact title.
func (u *movieUsecase) GetByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	movie, err := u.movies.FindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	movie.ImageURL = u.normalizeImageURL(movie.ImageURL)
	return movie, nil
}

// GetGenre returns the genre sub-object of any movie carrying that genre.
func (u *movieUsecase) GetGenre(ctx context.Context, name string) (*entity.Genre, error) {
	movie, err := u.movies.FindByGenreName(ctx, name)
	if err != nil {
		return nil, err
	}
	return &movie.Genre, nil
}

// GetDirector returns the director sub-object of any movie by that director.
func (u *movieUsecase) GetDirector(ctx context.Context, name string) (*entity.Director, error) {
	movie, err := u.movies.FindByDirectorName(ctx, name)
	if err != nil {
		return nil, err
	}
	return &movie.Director, nil
}

// RewriteImageURLs rebases every stored image reference onto baseURL and
// persists the result. Returns the number of records rewritten. Used by the
// one-shot maintenance command after the image host moves.
func (u *movieUsecase) RewriteImageURLs(ctx context.Context, baseURL string) (int, error) {
	movies, err := u.movies.FindAll(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, m := range movies {
		if m.ImageURL == "" {
			continue
		}
		rebased := baseURL + "/" + path.Base(m.ImageURL)
		if rebased == m.ImageURL {
			continue
		}
		if err := u.movies.UpdateImageURL(ctx, m.ID, rebased); err != nil {
			return updated, fmt.Errorf("failed to update image URL for %q: %w", m.Title, err)
		}
		updated++
	}
	return updated, nil
}
