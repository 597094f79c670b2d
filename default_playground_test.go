//go:build !validated_ozzo && !validated_custom

package validated_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validated"
	"github.com/dmitrymomot/validated/core"
	"github.com/dmitrymomot/validated/validate/playground"
)

type example struct {
	Name string `json:"name" validate:"min=5"`
}

func post(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/example", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestDefaultStrategy(t *testing.T) {
	assert.Equal(t, playground.Name, validated.Strategy)

	got, err := validated.JSON[example]().Extract(post(`{"name":"12345"}`))
	require.NoError(t, err)
	assert.Equal(t, "12345", got.Value.Name)

	_, err = validated.JSON[example]().Extract(post(`{"name":"1234"}`))
	assert.Equal(t, http.StatusBadRequest, core.StatusCode(err))
}

func TestDefaultStrategy_SetErrorHandler(t *testing.T) {
	t.Cleanup(validated.ResetErrorHandler)

	validated.SetErrorHandler(func(errs validated.Failure, r *http.Request) error {
		return core.NewHTTPError(http.StatusUnprocessableEntity, errs[0].Tag())
	})

	// The root package and the strategy package share one slot.
	_, err := playground.JSON[example]().Extract(post(`{"name":"1234"}`))
	assert.Equal(t, core.NewHTTPError(http.StatusUnprocessableEntity, "min"), err)

	var _ validator.ValidationErrors = validated.Failure{}
}
