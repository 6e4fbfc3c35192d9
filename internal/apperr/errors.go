// Package apperr defines the service error taxonomy on top of go-errors and
// its mapping onto HTTP responses.
package apperr

import (
	"net/http"

	goerrors "github.com/goliatone/go-errors"
)

const (
	TextValidation   = "VALIDATION_FAILED"
	TextUnauthorized = "UNAUTHORIZED"
	TextForbidden    = "FORBIDDEN"
	TextNotFound     = "NOT_FOUND"
	TextConflict     = "CONFLICT"
	TextInternal     = "INTERNAL_ERROR"
)

// InternalMessage is the only message a caller ever sees for an internal error.
const InternalMessage = "Internal server error"

func Validation(message string) error {
	return goerrors.New(message, goerrors.CategoryValidation).
		WithCode(http.StatusBadRequest).
		WithTextCode(TextValidation)
}

func Unauthorized(message string) error {
	return goerrors.New(message, goerrors.CategoryAuth).
		WithCode(http.StatusUnauthorized).
		WithTextCode(TextUnauthorized)
}

func Forbidden(message string) error {
	return goerrors.New(message, goerrors.CategoryAuthz).
		WithCode(http.StatusForbidden).
		WithTextCode(TextForbidden)
}

func NotFound(message string) error {
	return goerrors.New(message, goerrors.CategoryNotFound).
		WithCode(http.StatusNotFound).
		WithTextCode(TextNotFound)
}

// Conflict reports a write blocked by existing dependents. It is a client
// error (400), not 409.
func Conflict(message string) error {
	return goerrors.New(message, goerrors.CategoryConflict).
		WithCode(http.StatusBadRequest).
		WithTextCode(TextConflict)
}

// Internal wraps an infrastructure failure. The cause stays reachable for
// logging but is never rendered.
func Internal(err error, message string) error {
	return goerrors.Wrap(err, goerrors.CategoryInternal, message).
		WithCode(http.StatusInternalServerError).
		WithTextCode(TextInternal)
}

// Resolve converts any error into a go-errors envelope. Errors that did not
// originate from this package become internal errors.
func Resolve(err error) *goerrors.Error {
	if err == nil {
		return nil
	}
	var rich *goerrors.Error
	if goerrors.As(err, &rich) {
		if rich.Code == 0 {
			rich.Code = statusFor(rich.Category)
		}
		return rich
	}
	return goerrors.Wrap(err, goerrors.CategoryInternal, "unexpected error").
		WithCode(http.StatusInternalServerError).
		WithTextCode(TextInternal)
}

// Status returns the HTTP status for err.
func Status(err error) int {
	if rich := Resolve(err); rich != nil {
		return rich.Code
	}
	return http.StatusOK
}

// IsCategory reports whether err carries the given go-errors category.
func IsCategory(err error, category goerrors.Category) bool {
	var rich *goerrors.Error
	return goerrors.As(err, &rich) && rich.Category == category
}

func statusFor(category goerrors.Category) int {
	switch category {
	case goerrors.CategoryValidation, goerrors.CategoryBadInput, goerrors.CategoryConflict:
		return http.StatusBadRequest
	case goerrors.CategoryAuth:
		return http.StatusUnauthorized
	case goerrors.CategoryAuthz:
		return http.StatusForbidden
	case goerrors.CategoryNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
