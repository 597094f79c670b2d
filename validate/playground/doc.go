// Package playground validates request payloads with
// github.com/go-playground/validator/v10 struct tags.
//
// Payload types declare their rules with `validate` tags; field paths in error
// bodies use the `json` tag names:
//
//	type CreateUser struct {
//		Name  string `json:"name" validate:"required,min=5,max=50"`
//		Email string `json:"email" validate:"required,email"`
//	}
//
//	http.Handle("/users", handler.Wrap(createUser,
//		handler.WithExtractor[handler.Context](playground.JSON[CreateUser]()),
//	))
//
// Failure messages are translated into English, Spanish or French depending on
// the request's Accept-Language header. Custom rules are added through the
// package engine:
//
//	playground.Default().RegisterRule("slug", isSlug, "{0} must be a valid slug")
package playground
