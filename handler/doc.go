// Package handler adapts typed handler functions to net/http.
//
// A handler receives a Context and a typed request value and returns a
// Response. Wrap turns it into an http.HandlerFunc that any router can mount:
//
//	type CreateUser struct {
//		Name  string `json:"name" validate:"required,min=5"`
//		Email string `json:"email" validate:"required,email"`
//	}
//
//	func createUser(ctx handler.Context, req playground.Validated[CreateUser]) handler.Response {
//		return handler.JSON(req.Value, handler.WithJSONStatus(http.StatusCreated))
//	}
//
//	r.Post("/users", handler.Wrap(createUser,
//		handler.WithExtractor[handler.Context](playground.JSON[CreateUser]()),
//	))
//
// # Request extraction
//
// WithExtractor supplies a binder.Extractor producing the request value. With a
// validated extractor (see package validate) the handler only runs for payloads
// that passed their ruleset. WithBinders is the untyped alternative that fills
// the request value with binder.Bind functions in order.
//
// When extraction fails the handler is not called; the error goes to the error
// handler instead.
//
// # Errors
//
// The default error handler renders core.ResponseError values (including
// validation errors) themselves, maps core.HTTPError and binder errors to their
// status codes and answers everything else with 500. NewErrorHandler builds a
// logging variant that also negotiates JSON or plain text bodies.
package handler
