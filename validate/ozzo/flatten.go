package ozzo

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/dmitrymomot/validated/validate"
)

// Flatten walks errs, including nested validation.Errors, and returns one
// violation per leaf error sorted by path.
func Flatten(errs validation.Errors) []validate.Violation {
	out := make([]validate.Violation, 0, len(errs))
	flatten("", errs, &out)
	slices.SortStableFunc(out, func(a, b validate.Violation) int {
		return strings.Compare(a.Path, b.Path)
	})
	return out
}

func flatten(prefix string, errs validation.Errors, out *[]validate.Violation) {
	for key, err := range errs {
		if err == nil {
			continue
		}
		path := joinPath(prefix, key)

		var nested validation.Errors
		if errors.As(err, &nested) {
			flatten(path, nested, out)
			continue
		}

		v := validate.Violation{Path: path, Message: err.Error()}
		var verr validation.Error
		if errors.As(err, &verr) {
			v.Code = verr.Code()
		}
		*out = append(*out, v)
	}
}

func joinPath(prefix, key string) string {
	switch {
	case key == "":
		return prefix
	case isIndex(key):
		return prefix + "[" + key + "]"
	case prefix == "":
		return key
	}
	return prefix + "." + key
}

func isIndex(key string) bool {
	_, err := strconv.Atoi(key)
	return err == nil
}
