// Package api defines the shared JSON response envelopes used by all HTTP handlers.
package api

// ErrorResponse is the generic error body. The message is deliberately coarse
// for authentication failures so callers cannot tell which credential was wrong.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldError describes a single invalid field in a request body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse carries the field-level error list returned by
// registration and profile updates.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// MessageResponse is a plain informational body.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}
