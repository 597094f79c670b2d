package binder

import (
	"errors"
	"net/http"
)

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrBodyTooLarge         = errors.New("request body too large")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrInvalidYAML          = errors.New("invalid YAML")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrInvalidQuery         = errors.New("invalid query parameter")
	ErrInvalidPath          = errors.New("invalid path parameter")

	// ErrNotApplicable is returned by a binder that has nothing to do for the
	// request. Of skips such binders instead of failing.
	ErrNotApplicable = errors.New("binder not applicable")
)

// StatusCode maps a binding error to the HTTP status code the client should see.
// Errors that did not originate in this package map to 500.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrUnsupportedMediaType), errors.Is(err, ErrMissingContentType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrInvalidJSON),
		errors.Is(err, ErrInvalidYAML),
		errors.Is(err, ErrInvalidForm),
		errors.Is(err, ErrInvalidQuery),
		errors.Is(err, ErrInvalidPath):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// IsBindError reports whether err originated in this package.
func IsBindError(err error) bool {
	return StatusCode(err) != http.StatusInternalServerError
}
