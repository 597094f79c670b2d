package playground

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/validated/validate"
)

// Flatten converts validator errors into violations.
// Paths drop the top-level struct name, so a failure on
// CreateOrder.Items[0].Name is reported as "items[0].name" when the fields
// carry those json tags. Messages are translated with trans when it is non-nil.
func Flatten(errs validator.ValidationErrors, trans ut.Translator) []validate.Violation {
	out := make([]validate.Violation, 0, len(errs))
	for _, fe := range errs {
		msg := fe.Error()
		if trans != nil {
			msg = fe.Translate(trans)
		}
		// Payload-level failures have no field name to lead the message.
		msg = strings.TrimSpace(msg)
		out = append(out, validate.Violation{
			Path:    fieldPath(fe.Namespace()),
			Message: msg,
			Code:    fe.Tag(),
		})
	}
	return out
}

func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}
