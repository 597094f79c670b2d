package demo

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/dmitrymomot/validated/core"
	"github.com/dmitrymomot/validated/validate/ozzo"
)

// CustomErrorResponse replaces the default validation body with a
// caller-defined JSON document.
type CustomErrorResponse struct {
	CustomMessage string   `json:"custom_message"`
	Errors        []string `json:"errors"`
}

func (e CustomErrorResponse) Error() string {
	return "My custom error. This is just an example of a custom validation response"
}

// StatusCode implements core.ResponseError.
func (e CustomErrorResponse) StatusCode() int {
	return http.StatusBadRequest
}

// WriteResponse implements core.ResponseError. The body is always JSON.
func (e CustomErrorResponse) WriteResponse(w http.ResponseWriter, _ *http.Request) error {
	return core.WriteJSON(w, e.StatusCode(), e)
}

// CustomErrorHandler converts ozzo failures into a CustomErrorResponse.
func CustomErrorHandler(errs validation.Errors, _ *http.Request) error {
	violations := ozzo.Flatten(errs)
	messages := make([]string, 0, len(violations))
	for _, v := range violations {
		messages = append(messages, v.Message)
	}
	return CustomErrorResponse{
		CustomMessage: "My custom message",
		Errors:        messages,
	}
}
