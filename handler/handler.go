package handler

import (
	"net/http"

	"github.com/dmitrymomot/validated/binder"
)

// HandlerFunc handles a request with a typed context and request value.
// C must implement Context; R is whatever the extractor produces.
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// ErrorHandler handles errors from extraction or rendering.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc to add cross-cutting behaviour.
// The first decorator passed to WithDecorators is the outermost.
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// WrapOption configures Wrap.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

type wrapConfig[C Context, R any] struct {
	extractor      binder.Extractor[R]
	binders        []binder.Bind
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
	decorators     []Decorator[C, R]
}

// WithExtractor sets the extractor that produces the request value.
// It takes precedence over WithBinders.
//
//	handler.Wrap(createUser,
//		handler.WithExtractor[handler.Context](ozzo.JSON[CreateUser]()),
//	)
func WithExtractor[C Context, R any](e binder.Extractor[R]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if e != nil {
			c.extractor = e
		}
	}
}

// WithBinders fills the request value with binders applied in order.
// Binders returning binder.ErrNotApplicable are skipped.
//
//	handler.Wrap(updateUser,
//		handler.WithBinders[handler.Context, UpdateUser](
//			binder.BindPath(chi.URLParam),
//			binder.BindJSON(),
//		),
//	)
func WithBinders[C Context, R any](binders ...binder.Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.binders = append(c.binders, binders...)
	}
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory sets a custom context factory.
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

// WithDecorators adds decorators around the handler.
func WithDecorators[C Context, R any](decorators ...Decorator[C, R]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

func defaultContextFactory[C Context](w http.ResponseWriter, r *http.Request) C {
	if c, ok := NewContext(w, r).(C); ok {
		return c
	}
	panic(ErrNoContext)
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
//
// Per request it builds the context, extracts the request value, runs the
// decorated handler and renders its response. Extraction and render errors go
// to the error handler.
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{
		errorHandler:   DefaultErrorHandler[C],
		contextFactory: defaultContextFactory[C],
	}
	for _, opt := range opts {
		opt(cfg)
	}

	extractor := cfg.extractor
	if extractor == nil {
		extractor = binder.Of[R](cfg.binders...)
	}

	final := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		final = cfg.decorators[i](final)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		req, err := extractor.Extract(r)
		if err != nil {
			cfg.errorHandler(ctx, err)
			return
		}

		response := final(ctx, req)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
