//go:build validated_custom

package validated

import (
	"github.com/dmitrymomot/validated/binder"
	"github.com/dmitrymomot/validated/validate/custom"
)

// Strategy names the backend behind the unqualified names.
const Strategy = custom.Name

// Failure is the failure type reported by the selected strategy.
type Failure = custom.Errors

// Validated is a payload that passed validation.
type Validated[T any] = custom.Validated[T]

// ErrorHandler converts a Failure into a request error.
type ErrorHandler = custom.ErrorHandler

// Option configures Extract.
type Option = custom.Option

// Extract validates whatever inner yields.
func Extract[T any](inner binder.Extractor[T], opts ...Option) binder.Extractor[Validated[T]] {
	return custom.Extract(inner, opts...)
}

// JSON extracts and validates T from a JSON body.
func JSON[T any](opts ...Option) binder.Extractor[Validated[T]] {
	return custom.JSON[T](opts...)
}

// Query extracts and validates T from the query string.
func Query[T any](opts ...Option) binder.Extractor[Validated[T]] {
	return custom.Query[T](opts...)
}

// Form extracts and validates T from a url-encoded form body.
func Form[T any](opts ...Option) binder.Extractor[Validated[T]] {
	return custom.Form[T](opts...)
}

// SetErrorHandler installs the process-wide handler for failed validations.
func SetErrorHandler(h ErrorHandler) {
	custom.SetErrorHandler(h)
}

// ResetErrorHandler restores the default 400 response.
func ResetErrorHandler() {
	custom.ResetErrorHandler()
}
