package custom

import (
	"errors"
	"strings"
)

// Error is a single rule failure.
type Error struct {
	Field   string
	Message string
	// Key is a stable identifier suitable for translation lookups,
	// e.g. "validation.required".
	Key    string
	Params map[string]any
}

func (e Error) String() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Errors is the failure type of the custom strategy.
type Errors []Error

func (es Errors) Error() string {
	if len(es) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(es))
	for _, e := range es {
		parts = append(parts, e.String())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends e.
func (es *Errors) Add(e Error) {
	*es = append(*es, e)
}

// Has reports whether field has at least one error.
func (es Errors) Has(field string) bool {
	for _, e := range es {
		if e.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages reported for field.
func (es Errors) Get(field string) []string {
	var messages []string
	for _, e := range es {
		if e.Field == field {
			messages = append(messages, e.Message)
		}
	}
	return messages
}

// Fields returns the distinct failing fields in report order.
func (es Errors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, e := range es {
		if !seen[e.Field] {
			fields = append(fields, e.Field)
			seen[e.Field] = true
		}
	}
	return fields
}

// AsErrors converts err into Errors. A plain error becomes a single
// field-less entry; nil yields nil.
func AsErrors(err error) Errors {
	if err == nil {
		return nil
	}
	var es Errors
	if errors.As(err, &es) {
		return es
	}
	return Errors{{Message: err.Error(), Key: "validation.invalid"}}
}

// Join merges the failures of several checks. It returns nil when every
// argument is nil or empty.
func Join(errs ...error) error {
	var out Errors
	for _, err := range errs {
		out = append(out, AsErrors(err)...)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
