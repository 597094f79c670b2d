package custom

import (
	"cmp"
	"fmt"
	"net/mail"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dmitrymomot/validated/validate"
)

// Rule is a single check together with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error Error
}

// Apply evaluates every rule and returns the failures as Errors, or nil.
func Apply(rules ...Rule) error {
	var errs Errors
	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Required fails for strings that are empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: Error{
			Field:   field,
			Message: "field is required",
			Key:     "validation.required",
		},
	}
}

// NotZero fails for the zero value of T.
func NotZero[T comparable](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			var zero T
			return value != zero
		},
		Error: Error{
			Field:   field,
			Message: "field is required",
			Key:     "validation.required",
		},
	}
}

// MinLen checks the length of value in characters.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: Error{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", min),
			Key:     "validation.min_length",
			Params:  map[string]any{"min": min},
		},
	}
}

// MaxLen checks the length of value in characters.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: Error{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
			Key:     "validation.max_length",
			Params:  map[string]any{"max": max},
		},
	}
}

// Len checks the exact length of value in characters.
func Len(field, value string, exact int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) == exact
		},
		Error: Error{
			Field:   field,
			Message: fmt.Sprintf("must be exactly %d characters long", exact),
			Key:     "validation.length",
			Params:  map[string]any{"length": exact},
		},
	}
}

// Email accepts a bare address such as "user@example.com".
// Display-name forms ("Jane <jane@example.com>") are rejected.
func Email(field, value string) Rule {
	return Rule{
		Check: func() bool {
			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Address != value {
				return false
			}
			_, domain, ok := strings.Cut(addr.Address, "@")
			return ok && strings.Contains(domain, ".") && !strings.HasSuffix(domain, ".")
		},
		Error: Error{
			Field:   field,
			Message: "must be a valid email address",
			Key:     "validation.email",
		},
	}
}

// UUID accepts the canonical 36-character UUID form.
func UUID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if len(value) != 36 {
				return false
			}
			_, err := uuid.Parse(value)
			return err == nil
		},
		Error: Error{
			Field:   field,
			Message: "must be a valid UUID",
			Key:     "validation.uuid",
		},
	}
}

// OneOf fails unless value is one of options.
func OneOf[T comparable](field string, value T, options ...T) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(options, value)
		},
		Error: Error{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %v", options),
			Key:     "validation.one_of",
			Params:  map[string]any{"options": options},
		},
	}
}

// Min fails when value is less than min.
func Min[T cmp.Ordered](field string, value, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: Error{
			Field:   field,
			Message: fmt.Sprintf("must be at least %v", min),
			Key:     "validation.min",
			Params:  map[string]any{"min": min},
		},
	}
}

// Max fails when value is greater than max.
func Max[T cmp.Ordered](field string, value, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: Error{
			Field:   field,
			Message: fmt.Sprintf("must be at most %v", max),
			Key:     "validation.max",
			Params:  map[string]any{"max": max},
		},
	}
}

// Between fails unless min <= value <= max.
func Between[T cmp.Ordered](field string, value, min, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Error: Error{
			Field:   field,
			Message: fmt.Sprintf("must be between %v and %v", min, max),
			Key:     "validation.between",
			Params:  map[string]any{"min": min, "max": max},
		},
	}
}

// Match fails unless value matches re. description names the expected
// format in the error message.
func Match(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: Error{
			Field:   field,
			Message: "must match " + description,
			Key:     "validation.match",
			Params:  map[string]any{"pattern": re.String()},
		},
	}
}

// Nested validates v and prefixes every reported field with field.
// A nil v is reported as a missing value.
func Nested(field string, v Validatable) error {
	if validate.IsNil(v) {
		return Errors{missing(field)}
	}
	return prefix(field, v.Validate())
}

// Each validates every element of items; fields are prefixed with
// field[i].
func Each[T Validatable](field string, items []T) error {
	var errs Errors
	for i, item := range items {
		name := field + "[" + strconv.Itoa(i) + "]"
		if validate.IsNil(item) {
			errs = append(errs, missing(name))
			continue
		}
		errs = append(errs, AsErrors(prefix(name, item.Validate()))...)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func missing(field string) Error {
	msg := "payload is required"
	if field != "" {
		msg = "field is required"
	}
	return Error{Field: field, Message: msg, Key: "validation.required"}
}

func prefix(field string, err error) error {
	errs := AsErrors(err)
	if len(errs) == 0 {
		return nil
	}
	out := make(Errors, 0, len(errs))
	for _, e := range errs {
		switch {
		case e.Field == "":
			e.Field = field
		case strings.HasPrefix(e.Field, "["):
			e.Field = field + e.Field
		default:
			e.Field = field + "." + e.Field
		}
		out = append(out, e)
	}
	return out
}
