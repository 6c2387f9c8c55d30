package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors converts a gin binding error into a field-level error list.
// Non-validator errors (malformed JSON and the like) collapse into a single
// entry so the response shape stays uniform.
func FieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Message: "invalid request body"}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "alphanum":
		return "must contain only alphanumeric characters"
	case "email":
		return "does not appear to be a valid email address"
	case "datetime":
		return fmt.Sprintf("must be a date in %s format", fe.Param())
	default:
		return fmt.Sprintf("failed validation on %q", fe.Tag())
	}
}
