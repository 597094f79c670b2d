package ozzo

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/dmitrymomot/validated/binder"
	"github.com/dmitrymomot/validated/validate"
)

// Name identifies the strategy in logs and error values.
const Name = "ozzo"

// ErrNotValidatable is returned when a payload type has no Validate method.
var ErrNotValidatable = errors.New("payload does not implement validation.Validatable")

// Validated is a payload that passed its ozzo rules.
type Validated[T any] = validate.Validated[T]

// ErrorHandler converts ozzo errors into a request error.
type ErrorHandler = validate.ErrorHandler[validation.Errors]

// Option configures Extract.
type Option = validate.Option[validation.Errors]

var slot = validate.NewSlot[validation.Errors](Name)

// SetErrorHandler installs the process-wide handler for failed validations.
// A nil handler restores the default 400 response.
func SetErrorHandler(h ErrorHandler) {
	slot.Set(h)
}

// ResetErrorHandler restores the default 400 response.
func ResetErrorHandler() {
	slot.Reset()
}

// Strategy validates T through its Validate or ValidateWithContext method.
type Strategy[T any] struct{}

// Name implements validate.Strategy.
func (Strategy[T]) Name() string {
	return Name
}

// Validate implements validate.Strategy.
// Failures are always reported as validation.Errors; internal rule errors are
// passed through so they surface as validator failures.
func (Strategy[T]) Validate(ctx context.Context, payload T) error {
	if validate.IsNil(payload) {
		return validation.Errors{"": validation.ErrRequired}
	}

	ok, err := run(ctx, any(payload))
	if !ok {
		// Validate may be declared on the pointer receiver.
		ok, err = run(ctx, any(&payload))
	}
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotValidatable, payload)
	}
	return normalize(err)
}

// Convert builds the default 400 error.
func (Strategy[T]) Convert(errs validation.Errors, _ *http.Request) error {
	return validate.NewError(Name, errs, Flatten(errs))
}

func run(ctx context.Context, v any) (bool, error) {
	switch p := v.(type) {
	case validation.ValidatableWithContext:
		return true, p.ValidateWithContext(ctx)
	case validation.Validatable:
		return true, p.Validate()
	}
	return false, nil
}

func normalize(err error) error {
	if err == nil {
		return nil
	}

	var internal validation.InternalError
	if errors.As(err, &internal) {
		return err
	}

	var errs validation.Errors
	if errors.As(err, &errs) {
		if errs.Filter() == nil {
			return nil
		}
		return errs
	}

	// A single rule error or a plain error from a hand-written Validate
	// describes the payload as a whole.
	return validation.Errors{"": err}
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
