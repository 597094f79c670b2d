//go:build validated_custom

package validated_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validated"
	"github.com/dmitrymomot/validated/core"
	"github.com/dmitrymomot/validated/validate/custom"
)

type example struct {
	Name string `json:"name"`
}

func (e example) Validate() error {
	return custom.Apply(custom.MinLen("name", e.Name, 5))
}

func post(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/example", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestDefaultStrategy(t *testing.T) {
	assert.Equal(t, custom.Name, validated.Strategy)

	got, err := validated.JSON[example]().Extract(post(`{"name":"12345"}`))
	require.NoError(t, err)
	assert.Equal(t, "12345", got.Value.Name)

	_, err = validated.JSON[example]().Extract(post(`{"name":"1234"}`))
	assert.Equal(t, http.StatusBadRequest, core.StatusCode(err))
}
