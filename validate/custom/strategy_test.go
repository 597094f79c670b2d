package custom_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validated/core"
	"github.com/dmitrymomot/validated/validate"
	"github.com/dmitrymomot/validated/validate/custom"
)

type signup struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email"`
}

func (s signup) Validate() error {
	return custom.Apply(
		custom.MinLen("name", s.Name, 5),
		custom.Email("email", s.Email),
	)
}

type pointerSignup struct {
	Name string `json:"name"`
}

func (s *pointerSignup) Validate() error {
	return custom.Apply(custom.Required("name", s.Name))
}

type unchecked struct {
	Name string `json:"name"`
}

func jsonRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		got, err := custom.JSON[signup]().Extract(jsonRequest(`{"name":"Jane Doe","email":"jane@example.com"}`))
		require.NoError(t, err)
		assert.Equal(t, signup{Name: "Jane Doe", Email: "jane@example.com"}, got.Value)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		_, err := custom.JSON[signup]().Extract(jsonRequest(`{"name":"Jane","email":"nope"}`))
		assert.Equal(t, http.StatusBadRequest, core.StatusCode(err))

		var verr *validate.Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, custom.Name, verr.Strategy)
		assert.Equal(t,
			"Validation errors in fields:\n\tname: must be at least 5 characters long\n\temail: must be a valid email address",
			verr.Text(),
		)
		assert.Equal(t, "validation.min_length", verr.Violations[0].Code)

		var errs custom.Errors
		require.ErrorAs(t, err, &errs)
		assert.Len(t, errs, 2)
	})

	t.Run("pointer receiver", func(t *testing.T) {
		t.Parallel()
		_, err := custom.JSON[pointerSignup]().Extract(jsonRequest(`{"name":""}`))
		var verr *validate.Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "name", verr.Violations[0].Path)
	})

	t.Run("not validatable", func(t *testing.T) {
		t.Parallel()
		_, err := custom.JSON[unchecked]().Extract(jsonRequest(`{"name":""}`))
		assert.True(t, errors.Is(err, validate.ErrValidatorFailure))
		assert.True(t, errors.Is(err, custom.ErrNotValidatable))
	})
}

func TestJSON_NullBodyForPointerPayload(t *testing.T) {
	t.Parallel()

	t.Run("value receiver", func(t *testing.T) {
		t.Parallel()
		_, err := custom.JSON[*signup]().Extract(jsonRequest(`null`))
		require.Error(t, err)
		assert.False(t, errors.Is(err, validate.ErrValidatorFailure))
		assert.Equal(t, http.StatusBadRequest, core.StatusCode(err))

		var errs custom.Errors
		require.ErrorAs(t, err, &errs)
		require.Len(t, errs, 1)
		assert.Equal(t, "", errs[0].Field)
		assert.Equal(t, "validation.required", errs[0].Key)
		assert.Equal(t, "payload is required", errs[0].Message)
	})

	t.Run("pointer receiver", func(t *testing.T) {
		t.Parallel()
		_, err := custom.JSON[*pointerSignup]().Extract(jsonRequest(`null`))
		assert.Equal(t, http.StatusBadRequest, core.StatusCode(err))
	})
}

func TestForm(t *testing.T) {
	t.Parallel()

	form := url.Values{"name": {"Jane Doe"}, "email": {"jane@example.com"}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	got, err := custom.Form[signup]().Extract(req)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Value.Name)
}

func TestSetErrorHandler(t *testing.T) {
	t.Cleanup(custom.ResetErrorHandler)

	custom.SetErrorHandler(func(errs custom.Errors, r *http.Request) error {
		return core.NewHTTPError(http.StatusUnprocessableEntity, errs.Fields()[0])
	})

	_, err := custom.JSON[signup]().Extract(jsonRequest(`{"name":"Jo","email":"jo@example.com"}`))
	assert.Equal(t, core.NewHTTPError(http.StatusUnprocessableEntity, "name"), err)

	custom.SetErrorHandler(nil)
	_, err = custom.JSON[signup]().Extract(jsonRequest(`{"name":"Jo","email":"jo@example.com"}`))
	assert.Equal(t, http.StatusBadRequest, core.StatusCode(err))
}
