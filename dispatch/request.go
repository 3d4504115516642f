package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Request describes a single call.
type Request struct {
	Operation Operation
	// Path is relative to the dispatcher base URL, e.g. /api/question/list.
	Path string
	// Params is a flat map, url.Values or a struct with json tags.
	Params any
}

// Body returns the encoded request body, nil for get or nil params.
func (r *Request) Body() ([]byte, error) {
	if r.Operation == Get || r.Params == nil {
		return nil, nil
	}
	if r.Operation == Login {
		form, err := encodeForm(r.Params)
		if err != nil {
			return nil, err
		}
		return []byte(form), nil
	}
	data, err := json.Marshal(r.Params)
	if err != nil {
		return nil, fmt.Errorf("failed to encode params: %w", err)
	}
	return data, nil
}

// URL returns the request URL, get params are carried in the query string.
func (r *Request) URL(baseURL string) (string, error) {
	URL := joinURL(baseURL, r.Path)
	if r.Operation != Get {
		return URL, nil
	}
	query, err := encodeForm(r.Params)
	if err != nil {
		return "", err
	}
	if query == "" {
		return URL, nil
	}
	separator := "?"
	if strings.Contains(URL, "?") {
		separator = "&"
	}
	return URL + separator + query, nil
}

// HTTPRequest builds the outbound http request.
func (r *Request) HTTPRequest(ctx context.Context, baseURL string) (*http.Request, error) {
	URL, err := r.URL(baseURL)
	if err != nil {
		return nil, err
	}
	data, err := r.Body()
	if err != nil {
		return nil, err
	}
	var body io.Reader
	if data != nil {
		body = bytes.NewReader(data)
	}
	ret, err := http.NewRequestWithContext(ctx, r.Operation.Method(), URL, body)
	if err != nil {
		return nil, err
	}
	ret.Header.Set("Content-Type", r.Operation.ContentType())
	ret.Header.Set("Accept", ContentTypeJSON)
	return ret, nil
}

func joinURL(baseURL, path string) string {
	if path == "" {
		return baseURL
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}
