//go:build validated_ozzo && !validated_custom

package validated

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/dmitrymomot/validated/binder"
	"github.com/dmitrymomot/validated/validate/ozzo"
)

// Strategy names the backend behind the unqualified names.
const Strategy = ozzo.Name

// Failure is the failure type reported by the selected strategy.
type Failure = validation.Errors

// Validated is a payload that passed validation.
type Validated[T any] = ozzo.Validated[T]

// ErrorHandler converts a Failure into a request error.
type ErrorHandler = ozzo.ErrorHandler

// Option configures Extract.
type Option = ozzo.Option

// Extract validates whatever inner yields.
func Extract[T any](inner binder.Extractor[T], opts ...Option) binder.Extractor[Validated[T]] {
	return ozzo.Extract(inner, opts...)
}

// JSON extracts and validates T from a JSON body.
func JSON[T any](opts ...Option) binder.Extractor[Validated[T]] {
	return ozzo.JSON[T](opts...)
}

// Query extracts and validates T from the query string.
func Query[T any](opts ...Option) binder.Extractor[Validated[T]] {
	return ozzo.Query[T](opts...)
}

// Form extracts and validates T from a url-encoded form body.
func Form[T any](opts ...Option) binder.Extractor[Validated[T]] {
	return ozzo.Form[T](opts...)
}

// SetErrorHandler installs the process-wide handler for failed validations.
func SetErrorHandler(h ErrorHandler) {
	ozzo.SetErrorHandler(h)
}

// ResetErrorHandler restores the default 400 response.
func ResetErrorHandler() {
	ozzo.ResetErrorHandler()
}
