package custom

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/validated/binder"
	"github.com/dmitrymomot/validated/validate"
)

// Name identifies the strategy in logs and error values.
const Name = "custom"

// ErrNotValidatable is returned when a payload type has no Validate method.
var ErrNotValidatable = errors.New("payload does not implement custom.Validatable")

// Validatable is implemented by payloads checked by this strategy.
type Validatable interface {
	Validate() error
}

// Validated is a payload that passed its rules.
type Validated[T any] = validate.Validated[T]

// ErrorHandler converts Errors into a request error.
type ErrorHandler = validate.ErrorHandler[Errors]

// Option configures Extract.
type Option = validate.Option[Errors]

var slot = validate.NewSlot[Errors](Name)

// SetErrorHandler installs the process-wide handler for failed validations.
// A nil handler restores the default 400 response.
func SetErrorHandler(h ErrorHandler) {
	slot.Set(h)
}

// ResetErrorHandler restores the default 400 response.
func ResetErrorHandler() {
	slot.Reset()
}

// Strategy validates T through its Validate method.
type Strategy[T any] struct{}

// Name implements validate.Strategy.
func (Strategy[T]) Name() string {
	return Name
}

// Validate implements validate.Strategy.
func (Strategy[T]) Validate(_ context.Context, payload T) error {
	if validate.IsNil(payload) {
		return Errors{missing("")}
	}

	v, ok := any(payload).(Validatable)
	if !ok {
		v, ok = any(&payload).(Validatable)
	}
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotValidatable, payload)
	}

	errs := AsErrors(v.Validate())
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Convert builds the default 400 error.
func (Strategy[T]) Convert(errs Errors, _ *http.Request) error {
	violations := make([]validate.Violation, 0, len(errs))
	for _, e := range errs {
		violations = append(violations, validate.Violation{
			Path:    e.Field,
			Message: e.Message,
			Code:    e.Key,
		})
	}
	return validate.NewError(Name, errs, violations)
}

// Extract validates whatever inner yields.
func Extract[T any](inner binder.Extractor[T], opts ...Option) binder.Extractor[Validated[T]] {
	return validate.Extract(inner, Strategy[T]{}, slot, opts...)
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
