package binder

import (
	"net/http"
)

// BindQuery creates a query parameter binder.
//
// It supports struct tags for custom parameter names:
//   - `query:"name"` - binds to query parameter "name"
//   - `query:"-"` - skips the field
//
// Supported types:
//   - Basic types: string, int, int64, uint, uint64, float32, float64, bool
//   - Slices of basic types for multi-value parameters
//   - Pointers for optional fields
//
// Example:
//
//	type SearchRequest struct {
//		Query    string   `query:"q"`
//		Page     int      `query:"page"`
//		Tags     []string `query:"tags"`   // ?tags=go&tags=web or ?tags=go,web
//		Active   *bool    `query:"active"` // Optional
//		Internal string   `query:"-"`      // Skipped
//	}
func BindQuery() Bind {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}
