// Package apperrors defines the error taxonomy shared by services and
// handlers. Services return these sentinels (possibly wrapped); handlers
// translate them to HTTP statuses in one place.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnauthenticated      = errors.New("not authorized")
	ErrForbidden            = errors.New("forbidden")
	ErrNotFound             = errors.New("not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrDuplicateEmail       = errors.New("an account with this email already exists")
	ErrDuplicateApplication = errors.New("you have already applied for this job")
	ErrJobNotAvailable      = errors.New("this job is no longer accepting applications")
	ErrResumeRequired       = errors.New("please upload a resume to apply")
	ErrUpload               = errors.New("error uploading file")
)

// ValidationError reports malformed or missing input, naming the field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validation builds a field-level validation error.
func Validation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// HTTPStatus maps an error to the status code the API responds with.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidation(err),
		errors.Is(err, ErrDuplicateApplication),
		errors.Is(err, ErrDuplicateEmail),
		errors.Is(err, ErrJobNotAvailable),
		errors.Is(err, ErrResumeRequired):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
