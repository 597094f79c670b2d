package core

import (
	"encoding/json"
	"errors"
	"net/http"
)

// HTTPError represents an HTTP error with status code and machine-readable key.
type HTTPError struct {
	Code int    // HTTP status code
	Key  string // Stable key (e.g., "not_found", "unauthorized")
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Key
}

// StatusCode returns the HTTP status code of the error.
func (e HTTPError) StatusCode() int {
	return e.Code
}

// WriteResponse writes the error as JSON or plain text depending on the Accept header.
func (e HTTPError) WriteResponse(w http.ResponseWriter, r *http.Request) error {
	if WantsJSON(r) {
		return WriteJSON(w, e.Code, ErrorBody{
			Code:    e.Key,
			Message: http.StatusText(e.Code),
			Status:  e.Code,
		})
	}
	http.Error(w, e.Key, e.Code)
	return nil
}

// ResponseError is an error that renders its own HTTP response.
// Validation error handlers are expected to return values implementing it;
// any other error is treated as opaque by the host error handler.
type ResponseError interface {
	error
	StatusCode() int
	WriteResponse(w http.ResponseWriter, r *http.Request) error
}

// 4xx Client Errors
var (
	ErrBadRequest            = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrUnauthorized          = HTTPError{Code: http.StatusUnauthorized, Key: "unauthorized"}
	ErrForbidden             = HTTPError{Code: http.StatusForbidden, Key: "forbidden"}
	ErrNotFound              = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrMethodNotAllowed      = HTTPError{Code: http.StatusMethodNotAllowed, Key: "method_not_allowed"}
	ErrConflict              = HTTPError{Code: http.StatusConflict, Key: "conflict"}
	ErrRequestEntityTooLarge = HTTPError{Code: http.StatusRequestEntityTooLarge, Key: "request_entity_too_large"}
	ErrUnsupportedMediaType  = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type"}
	ErrUnprocessableEntity   = HTTPError{Code: http.StatusUnprocessableEntity, Key: "unprocessable_entity"}
	ErrTooManyRequests       = HTTPError{Code: http.StatusTooManyRequests, Key: "too_many_requests"}
)

// 5xx Server Errors
var (
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
	ErrNotImplemented      = HTTPError{Code: http.StatusNotImplemented, Key: "not_implemented"}
	ErrServiceUnavailable  = HTTPError{Code: http.StatusServiceUnavailable, Key: "service_unavailable"}
)

// NewHTTPError creates a custom HTTP error with the given status code and key.
//
// Example:
//
//	err := core.NewHTTPError(http.StatusForbidden, "insufficient_permissions")
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

// StatusCode reports the HTTP status carried by err.
// Errors that carry no status map to 500.
func StatusCode(err error) int {
	var re ResponseError
	if errors.As(err, &re) {
		return re.StatusCode()
	}
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	return http.StatusInternalServerError
}

// FieldError is a single field-level failure in a JSON error body.
//
//	{ "field": "email", "error": "must be a valid email address" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ErrorBody is the JSON shape of every error rendered by this module.
type ErrorBody struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Status  int          `json:"status"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// WriteJSON encodes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
