package binder

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"gopkg.in/yaml.v3"
)

// BindYAML creates a YAML body binder.
// Accepted media types are application/yaml, application/x-yaml and text/yaml.
// Unknown fields are rejected and only a single document is allowed.
func BindYAML() Bind {
	return func(r *http.Request, v any) error {
		if err := checkMediaType(r, "application/yaml", "application/x-yaml", "text/yaml"); err != nil {
			return err
		}

		body, err := readBody(r, ErrInvalidYAML)
		if err != nil {
			return err
		}

		decoder := yaml.NewDecoder(bytes.NewReader(body))
		decoder.KnownFields(true)

		if err := decoder.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty document", ErrInvalidYAML)
			}
			return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
		}

		var extra yaml.Node
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: multiple documents are not allowed", ErrInvalidYAML)
		}

		return nil
	}
}
