package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validated/binder"
	"github.com/dmitrymomot/validated/core"
	"github.com/dmitrymomot/validated/handler"
	"github.com/dmitrymomot/validated/validate"
	"github.com/dmitrymomot/validated/validate/playground"
)

type createUser struct {
	Name string `json:"name" validate:"required,min=5"`
}

type updateUser struct {
	ID   int    `path:"id"`
	Name string `json:"name"`
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestWrap_WithExtractor(t *testing.T) {
	t.Parallel()

	var calls int
	h := handler.Wrap(
		func(ctx handler.Context, req playground.Validated[createUser]) handler.Response {
			calls++
			return handler.Text("Hello " + req.Value.Name)
		},
		handler.WithExtractor[handler.Context](playground.JSON[createUser]()),
	)

	t.Run("valid payload reaches handler", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h(rec, jsonRequest(http.MethodPost, "/", `{"name":"12345"}`))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Hello 12345", rec.Body.String())
	})

	t.Run("invalid payload is rejected before handler", func(t *testing.T) {
		before := calls
		rec := httptest.NewRecorder()
		h(rec, jsonRequest(http.MethodPost, "/", `{"name":"1234"}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Validation errors in fields:\n\tname: name must be at least 5 characters in length", rec.Body.String())
		assert.Equal(t, before, calls)
	})

	t.Run("extraction error is rendered with binder status", func(t *testing.T) {
		before := calls
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`name=x`))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h(rec, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
		assert.Equal(t, before, calls)
	})
}

func TestWrap_ValidationErrorHandlerResult(t *testing.T) {
	t.Parallel()

	newHandler := func(convert playground.ErrorHandler) http.HandlerFunc {
		return handler.Wrap(
			func(ctx handler.Context, req playground.Validated[createUser]) handler.Response {
				return handler.Empty()
			},
			handler.WithExtractor[handler.Context](playground.JSON[createUser](validate.WithErrorHandler(convert))),
		)
	}

	tests := []struct {
		name    string
		convert playground.ErrorHandler
		want    int
	}{
		{
			name: "http error keeps its status",
			convert: func(validator.ValidationErrors, *http.Request) error {
				return core.NewHTTPError(http.StatusUnprocessableEntity, "invalid_user")
			},
			want: http.StatusUnprocessableEntity,
		},
		{
			name: "plain error becomes internal error",
			convert: func(validator.ValidationErrors, *http.Request) error {
				return errors.New("name too short")
			},
			want: http.StatusInternalServerError,
		},
		{
			name: "nil falls back to default response",
			convert: func(validator.ValidationErrors, *http.Request) error {
				return nil
			},
			want: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			newHandler(tt.convert)(rec, jsonRequest(http.MethodPost, "/", `{"name":"x"}`))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestWrap_NullBodyForPointerPayload(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(
		func(ctx handler.Context, req playground.Validated[*createUser]) handler.Response {
			return handler.Text("Hello " + req.Value.Name)
		},
		handler.WithExtractor[handler.Context](playground.JSON[*createUser]()),
	)

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h(rec, jsonRequest(http.MethodPost, "/", `null`))
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWrap_WithBinders(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Put("/users/{id}", handler.Wrap(
		func(ctx handler.Context, req updateUser) handler.Response {
			return handler.JSON(req)
		},
		handler.WithBinders[handler.Context, updateUser](binder.BindPath(chi.URLParam), binder.BindJSON()),
	))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, jsonRequest(http.MethodPut, "/users/7", `{"name":"Jane"}`))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"ID":7,"name":"Jane"}}`, rec.Body.String())
}

func TestWrap_NoExtraction(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(func(ctx handler.Context, _ struct{}) handler.Response {
		return handler.Empty()
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodDelete, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestWrap_ErrorHandlerAndNilResponse(t *testing.T) {
	t.Parallel()

	var got error
	h := handler.Wrap(
		func(ctx handler.Context, _ struct{}) handler.Response { return nil },
		handler.WithErrorHandler[handler.Context, struct{}](func(ctx handler.Context, err error) {
			got = err
			ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
		}),
	)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, errors.Is(got, handler.ErrNilResponse))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestWrap_Decorators(t *testing.T) {
	t.Parallel()

	var order []string
	trace := func(name string) handler.Decorator[handler.Context, struct{}] {
		return func(next handler.HandlerFunc[handler.Context, struct{}]) handler.HandlerFunc[handler.Context, struct{}] {
			return func(ctx handler.Context, req struct{}) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.Wrap(
		func(ctx handler.Context, _ struct{}) handler.Response {
			order = append(order, "handler")
			return handler.Empty()
		},
		handler.WithDecorators(trace("outer"), trace("inner")),
	)

	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

type tenantContext struct {
	handler.Context
	tenant string
}

func TestWrap_ContextFactory(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(
		func(ctx tenantContext, _ struct{}) handler.Response {
			return handler.Text(ctx.tenant)
		},
		handler.WithContextFactory[tenantContext, struct{}](func(w http.ResponseWriter, r *http.Request) tenantContext {
			return tenantContext{Context: handler.NewContext(w, r), tenant: r.Header.Get("X-Tenant")}
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Tenant", "acme")
	rec := httptest.NewRecorder()
	h(rec, req)
	assert.Equal(t, "acme", rec.Body.String())
}

func TestWrap_CustomContextWithoutFactoryPanics(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(func(ctx tenantContext, _ struct{}) handler.Response {
		return handler.Empty()
	})

	assert.PanicsWithValue(t, handler.ErrNoContext, func() {
		h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestContext(t *testing.T) {
	t.Parallel()

	type key struct{}
	parent, cancel := context.WithCancel(context.WithValue(context.Background(), key{}, "v"))
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(parent)
	rec := httptest.NewRecorder()

	ctx := handler.NewContext(rec, req)
	assert.Same(t, req, ctx.Request())
	assert.Equal(t, rec, ctx.ResponseWriter())
	assert.Equal(t, "v", ctx.Value(key{}))
	require.NoError(t, ctx.Err())

	cancel()
	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestDefaultErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		accept string
		status int
		body   string
	}{
		{"http error text", core.ErrNotFound, "", http.StatusNotFound, "not_found\n"},
		{"http error json", core.ErrForbidden, "application/json", http.StatusForbidden, `{"code":"forbidden","message":"Forbidden","status":403}`},
		{"binder error", binder.ErrInvalidJSON, "", http.StatusBadRequest, "invalid JSON\n"},
		{"opaque error", errors.New("db down"), "", http.StatusInternalServerError, "An error occurred processing your request\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			rec := httptest.NewRecorder()

			handler.DefaultErrorHandler(handler.NewContext(rec, req), tt.err)
			assert.Equal(t, tt.status, rec.Code)
			if tt.accept == "application/json" {
				assert.JSONEq(t, tt.body, rec.Body.String())
			} else {
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}
