package transport

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
)

func clone(r *http.Request) (*http.Request, error) {
	cloned := r.Clone(r.Context())
	// deep-copy body so the caller request stays readable
	if r.Body != nil && r.Body != http.NoBody {
		buf, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}
		r.Body = io.NopCloser(bytes.NewBuffer(buf))
		cloned.Body = io.NopCloser(bytes.NewBuffer(buf))
	}
	return cloned, nil
}
