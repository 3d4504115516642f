package transport

import (
	"net/http"

	"golang.org/x/oauth2"
)

type Option func(*RoundTripper)

// WithTokenSource sets token source
func WithTokenSource(source oauth2.TokenSource) Option {
	return func(t *RoundTripper) {
		t.source = source
	}
}

// WithTransport sets underlying transport
func WithTransport(transport http.RoundTripper) Option {
	return func(t *RoundTripper) {
		t.transport = transport
	}
}

// WithRequestID sets request id generator
func WithRequestID(fn func() string) Option {
	return func(t *RoundTripper) {
		t.requestID = fn
	}
}
