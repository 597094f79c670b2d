// Package binder turns incoming HTTP requests into typed payloads.
//
// Two layers are provided. A Bind is the untyped building block: it fills a
// pointer from one part of the request (JSON body, YAML body, form data, query
// string or path parameters). An Extractor is the typed capability the rest of
// the module composes with: it returns a fully populated value of type T or an
// error.
//
//	type SearchRequest struct {
//		Query string `query:"q"`
//		Page  int    `query:"page"`
//	}
//
//	ex := binder.Query[SearchRequest]()
//	req, err := ex.Extract(r)
//
// Binders can be combined; each one processes only its own struct tags:
//
//	type UpdateUserRequest struct {
//		ID   string `path:"id"`
//		Name string `json:"name"`
//	}
//
//	ex := binder.Of[UpdateUserRequest](
//		binder.BindPath(chi.URLParam),
//		binder.BindJSON(),
//	)
//
// All failures wrap one of the package sentinel errors so callers can classify
// them with errors.Is; StatusCode maps them to HTTP status codes.
package binder
