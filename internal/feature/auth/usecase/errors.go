// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

// ErrInvalidCredentials is returned for every login failure. Whether the
// username was unknown or the password wrong is deliberately not
// distinguishable from the error.
var ErrInvalidCredentials = errors.New("invalid username or password")
