package transport

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// RequestIDHeader carries a per request correlation id.
const RequestIDHeader = "X-Request-Id"

type RoundTripper struct {
	source    oauth2.TokenSource
	transport http.RoundTripper
	requestID func() string
}

func New(options ...Option) *RoundTripper {
	ret := &RoundTripper{
		transport: http.DefaultTransport,
		requestID: uuid.NewString,
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	out, err := clone(req)
	if err != nil {
		return nil, err
	}
	if r.source != nil {
		token, err := r.source.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to get access token: %w", err)
		}
		// an empty token means signed out: no header at all
		if token != nil && token.AccessToken != "" {
			token.SetAuthHeader(out)
		}
	}
	if r.requestID != nil && out.Header.Get(RequestIDHeader) == "" {
		out.Header.Set(RequestIDHeader, r.requestID())
	}
	return r.transport.RoundTrip(out)
}
