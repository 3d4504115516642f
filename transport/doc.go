// Package transport implements an http.RoundTripper that attaches the session bearer
// token and a request id to every outgoing request.
//
// The RoundTripper is installed by the dispatcher but can also be used directly to
// authorize arbitrary HTTP traffic against the pybo backend.
package transport
