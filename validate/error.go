package validate

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrymomot/validated/core"
)

// Violation is one flattened validation failure.
type Violation struct {
	// Path is the dotted field path (e.g. "items[0].name"); empty for
	// payload-level failures.
	Path string
	// Message is the human-readable description.
	Message string
	// Code is the rule identifier reported by the backend (e.g. "required").
	Code string
}

// String formats the violation as "path: message".
func (v Violation) String() string {
	if v.Path == "" {
		return v.Message
	}
	return v.Path + ": " + v.Message
}

// Error is the default HTTP 400 error produced for a failed validation.
type Error struct {
	Strategy   string
	Violations []Violation
	Cause      error
}

// NewError builds the default validation error.
func NewError(strategy string, cause error, violations []Violation) *Error {
	return &Error{
		Strategy:   strategy,
		Violations: violations,
		Cause:      cause,
	}
}

func (e *Error) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap returns the backend failure.
func (e *Error) Unwrap() error {
	return e.Cause
}

// StatusCode implements core.ResponseError.
func (e *Error) StatusCode() int {
	return http.StatusBadRequest
}

// Text renders the plain-text body:
//
//	Validation errors in fields:
//		name: length must be between 5 and 50
func (e *Error) Text() string {
	var b strings.Builder
	b.WriteString("Validation errors in fields:")
	for _, v := range e.Violations {
		fmt.Fprintf(&b, "\n\t%s", v)
	}
	return b.String()
}

// FieldErrors converts violations into the JSON field error shape.
func (e *Error) FieldErrors() []core.FieldError {
	out := make([]core.FieldError, 0, len(e.Violations))
	for _, v := range e.Violations {
		out = append(out, core.FieldError{Field: v.Path, Error: v.Message})
	}
	return out
}

// WriteResponse implements core.ResponseError.
// JSON-preferring clients receive core.ErrorBody, everyone else the Text body.
func (e *Error) WriteResponse(w http.ResponseWriter, r *http.Request) error {
	if core.WantsJSON(r) {
		return core.WriteJSON(w, http.StatusBadRequest, core.ErrorBody{
			Code:    "validation_error",
			Message: "Validation failed",
			Status:  http.StatusBadRequest,
			Errors:  e.FieldErrors(),
		})
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusBadRequest)
	_, err := w.Write([]byte(e.Text()))
	return err
}
