package demo_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validated/internal/demo"
	"github.com/dmitrymomot/validated/pkg/logger"
	"github.com/dmitrymomot/validated/pkg/requestid"
)

func newServer(t *testing.T) (http.Handler, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatJSON))
	return demo.NewRouter(log), &buf
}

func do(h http.Handler, method, target, contentType, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestExampleRoutes(t *testing.T) {
	t.Parallel()
	h, _ := newServer(t)

	for _, path := range []string{"/playground/example", "/ozzo/example", "/custom/example"} {
		t.Run(path, func(t *testing.T) {
			t.Parallel()

			rec := do(h, http.MethodPost, path, "application/json", `{"name":"12345"}`)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "Hello 12345", rec.Body.String())

			rec = do(h, http.MethodPost, path, "application/json", `{"name":"foo"}`)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.True(t, strings.HasPrefix(rec.Body.String(), "Validation errors in fields:\n\tname: "))
			assert.NotEmpty(t, rec.Header().Get(requestid.Header))
		})
	}
}

func TestOzzoCustomErrorRoute(t *testing.T) {
	t.Parallel()
	h, _ := newServer(t)

	rec := do(h, http.MethodPost, "/ozzo/custom-error", "application/json", `{"name":"foo"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"custom_message":"My custom message","errors":["the length must be no less than 5"]}`, rec.Body.String())
}

func TestSearch(t *testing.T) {
	t.Parallel()
	h, _ := newServer(t)

	rec := do(h, http.MethodGet, "/search?q=go&tag=api&tag=http", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"q":"go","page":0,"limit":20,"tags":["api","http"]}}`, rec.Body.String())

	rec = do(h, http.MethodGet, "/search?q=g&limit=500", "", "", "Accept", "application/json")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Code   string `json:"code"`
		Errors []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "validation_error", body.Code)
	fields := make([]string, 0, len(body.Errors))
	for _, e := range body.Errors {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"q", "limit"}, fields)
}

func TestUpdateItem(t *testing.T) {
	t.Parallel()
	h, _ := newServer(t)

	const id = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	rec := do(h, http.MethodPut, "/items/"+id, "application/json", `{"title":"Lamp","price":19.5,"currency":"EUR"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"title":"Lamp","price":19.5,"currency":"EUR"},"meta":{"id":"`+id+`"}}`, rec.Body.String())

	rec = do(h, http.MethodPut, "/items/not-a-uuid", "application/json", `{"title":"Lamp","price":1,"currency":"EUR"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "ID")

	rec = do(h, http.MethodPut, "/items/"+id, "application/json", `{"title":"Lamp","price":1,"currency":"EUR","color":"red"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid JSON")
}

func TestSettingsYAML(t *testing.T) {
	t.Parallel()
	h, _ := newServer(t)

	valid := `
owner: ops@example.com
webhooks:
  - url: https://hooks.example.com/a
    events: [created, deleted]
limits:
  requests: 100
notify:
  email: alerts@example.com
`
	rec := do(h, http.MethodPut, "/settings", "application/yaml", valid)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"owner":"ops@example.com"`)

	invalid := `
owner: nobody
webhooks:
  - url: not a url
    events: [archived]
limits:
  requests: -1
`
	rec = do(h, http.MethodPut, "/settings", "application/yaml", invalid)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "\towner: ")
	assert.Contains(t, body, "\tlimits.requests: ")
	assert.Contains(t, body, "\twebhooks[0].url: ")
	assert.Contains(t, body, "\twebhooks[0].events[0]: ")
}

func TestSignupForm(t *testing.T) {
	t.Parallel()
	h, _ := newServer(t)

	form := url.Values{"username": {"jane_doe"}, "email": {"jane@example.com"}, "plan": {"team"}, "seats": {"5"}}
	rec := do(h, http.MethodPost, "/signup", "application/x-www-form-urlencoded", form.Encode())
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"username":"jane_doe","email":"jane@example.com","plan":"team","seats":5}}`, rec.Body.String())

	form = url.Values{"username": {"J"}, "email": {"jane"}, "plan": {"gold"}, "seats": {"0"}, "referrer": {"x"}}
	rec = do(h, http.MethodPost, "/signup", "application/x-www-form-urlencoded", form.Encode())
	require.Equal(t, http.StatusBadRequest, rec.Code)
	for _, field := range []string{"username", "email", "plan", "seats", "referrer"} {
		assert.Contains(t, rec.Body.String(), "\t"+field+": ")
	}
}

func TestErrorsAreLoggedWithRequestID(t *testing.T) {
	t.Parallel()
	h, buf := newServer(t)

	rec := do(h, http.MethodPost, "/custom/example", "application/json", `{"name":"foo"}`, requestid.Header, "trace-1")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "trace-1", rec.Header().Get(requestid.Header))
	assert.Contains(t, buf.String(), `"msg":"request error"`)
	assert.Contains(t, buf.String(), `"request_id":"trace-1"`)
	assert.Contains(t, buf.String(), `"strategy":"custom"`)
}

func TestHealthz(t *testing.T) {
	t.Parallel()
	h, _ := newServer(t)

	rec := do(h, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())
}
