package dispatch

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is a received and decoded response.
type Response struct {
	Request    *Request
	StatusCode int
	Header     http.Header
	// Body is nil for 204 No Content.
	Body json.RawMessage
}

// Success reports a 2xx status.
func (r *Response) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// DecodeError reports a response body that is not JSON.
type DecodeError struct {
	StatusCode int
	Body       []byte
}

func (e *DecodeError) Error() string {
	body := string(e.Body)
	if len(body) > 256 {
		body = body[:256] + "..."
	}
	return fmt.Sprintf("invalid JSON response (status %d): %q", e.StatusCode, body)
}
