package core

import (
	"mime"
	"net/http"
	"strings"
)

// WantsJSON reports whether the client prefers a JSON body.
// A request is considered JSON-preferring when its Accept header lists
// application/json (or a +json suffix type) before text/plain or text/html.
// Without an Accept header the answer is false, whatever the request body was.
func WantsJSON(r *http.Request) bool {
	if r == nil {
		return false
	}

	for part := range strings.SplitSeq(r.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		switch {
		case isJSONMediaType(mediaType):
			return true
		case mediaType == "text/plain", mediaType == "text/html":
			return false
		}
	}
	return false
}

func isJSONMediaType(mediaType string) bool {
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
