package dispatch

import (
	"log/slog"
	"net/http"
)

// Option represents option
type Option func(d *Dispatcher)

// WithHTTPClient sets the http client, its Timeout should stay zero to keep the
// single attempt, no timeout contract.
func WithHTTPClient(client *http.Client) Option {
	return func(d *Dispatcher) {
		d.client = client
	}
}

// WithTransport sets the round tripper of the default http client
func WithTransport(transport http.RoundTripper) Option {
	return func(d *Dispatcher) {
		d.client = &http.Client{Transport: transport}
	}
}

// WithNotifier sets notifier
func WithNotifier(notifier Notifier) Option {
	return func(d *Dispatcher) {
		d.notifier = notifier
	}
}

// WithInterceptor appends interceptors, they run in installation order
func WithInterceptor(interceptors ...Interceptor) Option {
	return func(d *Dispatcher) {
		d.interceptors = append(d.interceptors, interceptors...)
	}
}

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}
