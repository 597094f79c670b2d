package binder

import (
	"fmt"
	"net/http"
)

// BindPath creates a path parameter binder using the router's lookup function.
// The lookup is called once per tagged field.
//
// Example with chi router:
//
//	type ProfileRequest struct {
//		UserID string `path:"id"`
//		Name   string `json:"name"`
//	}
//
//	r := chi.NewRouter()
//	r.Put("/users/{id}", handler.Wrap(updateProfile,
//		handler.WithExtractor[handler.Context](binder.Of[ProfileRequest](
//			binder.BindPath(chi.URLParam),
//			binder.BindJSON(),
//		)),
//	))
//
// Only fields carrying a `path` tag are bound, so a path binder can be combined
// with body binders on the same struct.
func BindPath(param func(r *http.Request, name string) string) Bind {
	return func(r *http.Request, v any) error {
		if param == nil {
			return fmt.Errorf("%w: param lookup function is nil", ErrInvalidPath)
		}

		return bindTagged(v, "path", func(name string) []string {
			if value := param(r, name); value != "" {
				return []string{value}
			}
			return nil
		}, ErrInvalidPath)
	}
}
