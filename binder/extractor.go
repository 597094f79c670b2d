package binder

import (
	"errors"
	"net/http"
)

// Bind fills v (a non-nil pointer) from one part of the request.
type Bind func(r *http.Request, v any) error

// Extractor converts an incoming request into a typed payload.
type Extractor[T any] interface {
	Extract(r *http.Request) (T, error)
}

// ExtractorFunc adapts a function to the Extractor interface.
type ExtractorFunc[T any] func(r *http.Request) (T, error)

// Extract calls f(r).
func (f ExtractorFunc[T]) Extract(r *http.Request) (T, error) {
	return f(r)
}

// Of builds an Extractor that allocates a T and applies binds in order.
// Binders returning ErrNotApplicable are skipped; any other error aborts
// extraction and is returned unchanged.
func Of[T any](binds ...Bind) Extractor[T] {
	return ExtractorFunc[T](func(r *http.Request) (T, error) {
		var v T
		for _, bind := range binds {
			if bind == nil {
				continue
			}
			if err := bind(r, &v); err != nil {
				if errors.Is(err, ErrNotApplicable) {
					continue
				}
				var zero T
				return zero, err
			}
		}
		return v, nil
	})
}

// JSON extracts T from an application/json body.
func JSON[T any]() Extractor[T] {
	return Of[T](BindJSON())
}

// YAML extracts T from an application/yaml body.
func YAML[T any]() Extractor[T] {
	return Of[T](BindYAML())
}

// Form extracts T from an application/x-www-form-urlencoded body using `form` tags.
func Form[T any]() Extractor[T] {
	return Of[T](BindForm())
}

// Query extracts T from the URL query string using `query` tags.
func Query[T any]() Extractor[T] {
	return Of[T](BindQuery())
}

// Path extracts T from router path parameters using `path` tags.
// param is the router's lookup function, e.g. chi.URLParam.
func Path[T any](param func(r *http.Request, name string) string) Extractor[T] {
	return Of[T](BindPath(param))
}
