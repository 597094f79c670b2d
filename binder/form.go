package binder

import (
	"errors"
	"fmt"
	"net/http"
)

// BindForm creates a form data binder for application/x-www-form-urlencoded content.
//
// It supports struct tags for custom field names:
//   - `form:"name"` - binds to form field "name"
//   - `form:"-"` - skips the field
//   - `form:"name,omitempty"` - same as form:"name" for parsing
//
// Example:
//
//	type LoginRequest struct {
//		Username string   `form:"username"`
//		Password string   `form:"password"`
//		Remember bool     `form:"remember"`
//		Roles    []string `form:"roles"` // Multiple checkbox values
//	}
func BindForm() Bind {
	return func(r *http.Request, v any) error {
		if err := checkMediaType(r, "application/x-www-form-urlencoded"); err != nil {
			return err
		}

		r.Body = http.MaxBytesReader(nil, r.Body, DefaultMaxBodySize)
		if err := r.ParseForm(); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxErr.Limit)
			}
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}

		return bindToStruct(v, "form", r.PostForm, ErrInvalidForm)
	}
}
