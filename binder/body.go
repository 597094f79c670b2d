package binder

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"slices"
)

// DefaultMaxBodySize is the maximum request body size read by body binders (1MB).
const DefaultMaxBodySize = 1 << 20

// checkMediaType verifies the request Content-Type is one of accepted.
func checkMediaType(r *http.Request, accepted ...string) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: expected %s", ErrMissingContentType, accepted[0])
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, contentType)
	}

	if !slices.Contains(accepted, mediaType) {
		return fmt.Errorf("%w: got %s, expected %s", ErrUnsupportedMediaType, mediaType, accepted[0])
	}
	return nil
}

// readBody reads the whole body up to DefaultMaxBodySize.
// invalid is the sentinel used for read failures and empty bodies.
func readBody(r *http.Request, invalid error) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, fmt.Errorf("%w: empty body", invalid)
	}

	// Check for context cancellation before doing any IO.
	select {
	case <-r.Context().Done():
		return nil, fmt.Errorf("%w: %v", invalid, r.Context().Err())
	default:
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read request body: %v", invalid, err)
	}
	if len(body) > DefaultMaxBodySize {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, DefaultMaxBodySize)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty body", invalid)
	}
	return body, nil
}
