//go:build !validated_ozzo && !validated_custom

package validated

import (
	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/validated/binder"
	"github.com/dmitrymomot/validated/validate/playground"
)

// Strategy names the backend behind the unqualified names.
const Strategy = playground.Name

// Failure is the failure type reported by the selected strategy.
type Failure = validator.ValidationErrors

// Validated is a payload that passed validation.
type Validated[T any] = playground.Validated[T]

// ErrorHandler converts a Failure into a request error.
type ErrorHandler = playground.ErrorHandler

// Option configures Extract.
type Option = playground.Option

// Extract validates whatever inner yields.
func Extract[T any](inner binder.Extractor[T], opts ...Option) binder.Extractor[Validated[T]] {
	return playground.Extract(inner, opts...)
}

// JSON extracts and validates T from a JSON body.
func JSON[T any](opts ...Option) binder.Extractor[Validated[T]] {
	return playground.JSON[T](opts...)
}

// Query extracts and validates T from the query string.
func Query[T any](opts ...Option) binder.Extractor[Validated[T]] {
	return playground.Query[T](opts...)
}

// Form extracts and validates T from a url-encoded form body.
func Form[T any](opts ...Option) binder.Extractor[Validated[T]] {
	return playground.Form[T](opts...)
}

// SetErrorHandler installs the process-wide handler for failed validations.
func SetErrorHandler(h ErrorHandler) {
	playground.SetErrorHandler(h)
}

// ResetErrorHandler restores the default 400 response.
func ResetErrorHandler() {
	playground.ResetErrorHandler()
}
