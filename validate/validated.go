package validate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/validated/binder"
	"github.com/dmitrymomot/validated/pkg/logger"
)

// ErrValidatorFailure marks errors raised by a validation library itself
// (misuse, unsupported types, internal rule errors) rather than by the payload.
var ErrValidatorFailure = errors.New("validator failure")

// Validated holds a payload that was extracted and passed validation.
type Validated[T any] struct {
	Value T
}

// Unwrap returns the validated payload.
func (v Validated[T]) Unwrap() T {
	return v.Value
}

// ErrorHandler converts a strategy failure into the error returned for the request.
// Returning nil falls back to the strategy's default conversion.
//
// The returned error keeps a 4xx status only if it carries one: a
// core.ResponseError writes its own response, and a core.HTTPError maps to its
// status. Any other error is rendered by the handler package as a generic 500.
type ErrorHandler[F error] func(failure F, r *http.Request) error

// Strategy is a validation backend.
// F is the failure type the backend reports for invalid payloads.
type Strategy[T any, F error] interface {
	// Name identifies the strategy in logs and default error bodies.
	Name() string
	// Validate checks payload. A failure is reported as an error of type F;
	// any other non-nil error is treated as a validator failure.
	Validate(ctx context.Context, payload T) error
	// Convert is the default conversion of a failure into a request error.
	Convert(failure F, r *http.Request) error
}

// Option configures Extract.
type Option[F error] func(*options[F])

type options[F error] struct {
	handler ErrorHandler[F]
	logger  *slog.Logger
}

// WithErrorHandler sets an error handler for one extractor.
// It takes precedence over the strategy's process-wide slot.
func WithErrorHandler[F error](h ErrorHandler[F]) Option[F] {
	return func(o *options[F]) {
		if h != nil {
			o.handler = h
		}
	}
}

// WithLogger sets the logger used to record validation failures at debug level.
func WithLogger[F error](l *slog.Logger) Option[F] {
	return func(o *options[F]) {
		if l != nil {
			o.logger = l
		}
	}
}

// Extract wraps inner so that every extracted payload is validated by s before
// it is handed to the caller. slot may be nil.
func Extract[T any, F error](
	inner binder.Extractor[T],
	s Strategy[T, F],
	slot *Slot[F],
	opts ...Option[F],
) binder.Extractor[Validated[T]] {
	cfg := options[F]{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return binder.ExtractorFunc[Validated[T]](func(r *http.Request) (Validated[T], error) {
		payload, err := inner.Extract(r)
		if err != nil {
			return Validated[T]{}, err
		}

		if err := s.Validate(r.Context(), payload); err != nil {
			return Validated[T]{}, reject(r, err, s, slot, &cfg)
		}

		return Validated[T]{Value: payload}, nil
	})
}

func reject[T any, F error](r *http.Request, err error, s Strategy[T, F], slot *Slot[F], cfg *options[F]) error {
	var failure F
	if !errors.As(err, &failure) {
		return fmt.Errorf("%w: %s: %w", ErrValidatorFailure, s.Name(), err)
	}

	cfg.logger.LogAttrs(r.Context(), slog.LevelDebug, "request validation failed",
		logger.Component("validate"),
		logger.Strategy(s.Name()),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		logger.Error(failure),
	)

	h := cfg.handler
	if h == nil && slot != nil {
		h = slot.Get()
	}
	if h != nil {
		if herr := h(failure, r); herr != nil {
			return herr
		}
	}

	return s.Convert(failure, r)
}
