// Package validated validates request payloads between extraction and the
// handler.
//
// The unqualified names in this package (Validated, Extract, JSON, Query, Form,
// SetErrorHandler) are backed by exactly one validation strategy, selected at
// build time:
//
//	go build ./...                        # go-playground/validator (default)
//	go build -tags validated_ozzo ./...   # go-ozzo/ozzo-validation
//	go build -tags validated_custom ./... # in-house rules
//
// When both tags are given the custom strategy wins. Every strategy stays
// available under its own package (validate/playground, validate/ozzo,
// validate/custom) regardless of tags, so one binary can mix them:
//
//	r.Post("/users", handler.Wrap(createUser,
//		handler.WithExtractor[handler.Context](validated.JSON[CreateUser]()),
//	))
//
// A failing payload is answered with HTTP 400 and a body listing every
// violation:
//
//	Validation errors in fields:
//		name: name must be at least 5 characters in length
//
// Install a process-wide handler with SetErrorHandler to render something
// else, or pass validate.WithErrorHandler to a single extractor.
package validated
