package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/validated/core"
	"github.com/dmitrymomot/validated/validate"
)

// JSONResponse is the envelope of successful JSON responses.
type JSONResponse struct {
	Data any            `json:"data,omitempty"`
	Meta map[string]any `json:"meta,omitempty"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	return core.WriteJSON(w, j.status, j.body)
}

// JSONOption configures JSON and JSONError responses.
type JSONOption func(*jsonResponse)

// WithJSONStatus overrides the response status.
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta attaches metadata to a JSON envelope.
// It has no effect on error bodies.
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		if env, ok := r.body.(JSONResponse); ok {
			env.Meta = meta
			r.body = env
		}
	}
}

// JSON responds with v wrapped in a JSONResponse envelope and status 200.
// A JSONResponse value is sent as is; an error is rendered like JSONError.
func JSON(v any, opts ...JSONOption) Response {
	var r *jsonResponse
	switch val := v.(type) {
	case JSONResponse:
		r = &jsonResponse{status: http.StatusOK, body: val}
	case error:
		return JSONError(val, opts...)
	default:
		r = &jsonResponse{status: http.StatusOK, body: JSONResponse{Data: v}}
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError responds with a core.ErrorBody describing err.
//
// Validation errors carry their field list and status 400, core.HTTPError
// values their code and key, anything else is an opaque 500.
func JSONError(err error, opts ...JSONOption) Response {
	body := errorBody(err)
	r := &jsonResponse{status: body.Status, body: body}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func errorBody(err error) core.ErrorBody {
	var verr *validate.Error
	if errors.As(err, &verr) {
		return core.ErrorBody{
			Code:    "validation_error",
			Message: "Validation failed",
			Status:  verr.StatusCode(),
			Errors:  verr.FieldErrors(),
		}
	}

	var httpErr core.HTTPError
	if errors.As(err, &httpErr) {
		return core.ErrorBody{
			Code:    httpErr.Key,
			Message: http.StatusText(httpErr.Code),
			Status:  httpErr.Code,
		}
	}

	return core.ErrorBody{
		Code:    "internal_error",
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}
