// Package usecase implements the business logic for the movies catalog.
package usecase

import "errors"

// ErrMovieNotFound is returned when no catalog record matches the lookup key
// (title, genre name or director name).
var ErrMovieNotFound = errors.New("movie not found")
