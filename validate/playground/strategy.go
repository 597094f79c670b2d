package playground

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/validated/binder"
	"github.com/dmitrymomot/validated/validate"
)

// Name identifies the strategy in logs and error values.
const Name = "playground"

// Validated is a payload that passed struct tag validation.
type Validated[T any] = validate.Validated[T]

// ErrorHandler converts validator errors into a request error.
type ErrorHandler = validate.ErrorHandler[validator.ValidationErrors]

// Option configures Extract.
type Option = validate.Option[validator.ValidationErrors]

var slot = validate.NewSlot[validator.ValidationErrors](Name)

// SetErrorHandler installs the process-wide handler for failed validations.
// A nil handler restores the default 400 response.
func SetErrorHandler(h ErrorHandler) {
	slot.Set(h)
}

// ResetErrorHandler restores the default 400 response.
func ResetErrorHandler() {
	slot.Reset()
}

// Strategy validates T with an Engine. The zero value uses Default().
type Strategy[T any] struct {
	Engine *Engine
}

func (s Strategy[T]) engine() *Engine {
	if s.Engine != nil {
		return s.Engine
	}
	return Default()
}

// Name implements validate.Strategy.
func (Strategy[T]) Name() string {
	return Name
}

// Validate implements validate.Strategy.
// A nil payload fails the "required" tag with an empty path.
func (s Strategy[T]) Validate(ctx context.Context, payload T) error {
	if validate.IsNil(payload) {
		return s.engine().validate.VarCtx(ctx, any(payload), "required")
	}
	return s.engine().validate.StructCtx(ctx, payload)
}

// Convert builds the default 400 error with messages in the request's language.
func (s Strategy[T]) Convert(errs validator.ValidationErrors, r *http.Request) error {
	return validate.NewError(Name, errs, Flatten(errs, s.engine().Translator(r)))
}

// Extract validates whatever inner yields using the package engine.
func Extract[T any](inner binder.Extractor[T], opts ...Option) binder.Extractor[Validated[T]] {
	return validate.Extract(inner, Strategy[T]{}, slot, opts...)
}

// ExtractWith is Extract with an explicit engine.
func ExtractWith[T any](e *Engine, inner binder.Extractor[T], opts ...Option) binder.Extractor[Validated[T]] {
	return validate.Extract(inner, Strategy[T]{Engine: e}, slot, opts...)
}

// JSON extracts and validates T from a JSON body.
func JSON[T any](opts ...Option) binder.Extractor[Validated[T]] {
	return Extract(binder.JSON[T](), opts...)
}

// Query extracts and validates T from the query string.
func Query[T any](opts ...Option) binder.Extractor[Validated[T]] {
	return Extract(binder.Query[T](), opts...)
}

// Form extracts and validates T from a url-encoded form body.
func Form[T any](opts ...Option) binder.Extractor[Validated[T]] {
	return Extract(binder.Form[T](), opts...)
}
