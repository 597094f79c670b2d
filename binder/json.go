package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// BindJSON creates a JSON body binder.
//
// Decoding is strict: unknown fields and trailing data after the JSON value
// are rejected.
//
// Example:
//
//	http.HandleFunc("/users", handler.Wrap(createUser,
//		handler.WithBinders[handler.Context, CreateUserRequest](binder.BindJSON()),
//	))
func BindJSON() Bind {
	return func(r *http.Request, v any) error {
		if err := checkMediaType(r, "application/json"); err != nil {
			return err
		}

		body, err := readBody(r, ErrInvalidJSON)
		if err != nil {
			return err
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		decoder.DisallowUnknownFields()

		if err := decoder.Decode(v); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) && typeErr.Field != "" {
				return fmt.Errorf("%w: field %s: expected %s", ErrInvalidJSON, typeErr.Field, typeErr.Type)
			}
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}

		// Ensure the entire body was consumed
		var extra json.RawMessage
		if err := decoder.Decode(&extra); err != io.EOF {
			return fmt.Errorf("%w: unexpected data after JSON value", ErrInvalidJSON)
		}

		return nil
	}
}
