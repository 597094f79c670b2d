package handler

import "errors"

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response.
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrNoContext indicates the default context factory cannot produce the
	// handler's custom context type.
	ErrNoContext = errors.New("cannot use default context factory with custom context type - provide WithContextFactory")
)
