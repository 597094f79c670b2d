package handler

import "net/http"

type textResponse struct {
	status int
	body   string
}

func (t textResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(t.status)
	_, err := w.Write([]byte(t.body))
	return err
}

// Text responds with a plain-text body and status 200.
func Text(body string) Response {
	return textResponse{status: http.StatusOK, body: body}
}

// TextWithStatus responds with a plain-text body and the given status.
func TextWithStatus(status int, body string) Response {
	return textResponse{status: status, body: body}
}
