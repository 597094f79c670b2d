//go:build validated_ozzo && !validated_custom

package validated_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validated"
	"github.com/dmitrymomot/validated/core"
	"github.com/dmitrymomot/validated/validate/ozzo"
)

type example struct {
	Name string `json:"name"`
}

func (e example) Validate() error {
	return validation.ValidateStruct(&e, validation.Field(&e.Name, validation.Length(5, 0)))
}

func post(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/example", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestDefaultStrategy(t *testing.T) {
	assert.Equal(t, ozzo.Name, validated.Strategy)

	got, err := validated.JSON[example]().Extract(post(`{"name":"12345"}`))
	require.NoError(t, err)
	assert.Equal(t, "12345", got.Value.Name)

	_, err = validated.JSON[example]().Extract(post(`{"name":"1234"}`))
	assert.Equal(t, http.StatusBadRequest, core.StatusCode(err))
}
