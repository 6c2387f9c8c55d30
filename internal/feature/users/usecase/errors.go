// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the given username.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when registering a username that already exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrPermissionDenied is returned when the verified identity does not own
	// the targeted resource. Distinct from ErrUserNotFound: denial must not be
	// reported as absence.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidInput is returned when registration or update fields violate
	// their format constraints. Transport-level binding normally catches these
	// first; this is the usecase backstop.
	ErrInvalidInput = errors.New("invalid input")
)
