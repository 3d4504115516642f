package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/pybo/dispatch"
	"github.com/viant/pybo/session"
)

// Client calls the pybo backend.
type Client struct {
	dispatcher *dispatch.Dispatcher
	session    *session.Context
}

// New creates a client; session receives login results.
func New(dispatcher *dispatch.Dispatcher, session *session.Context) *Client {
	return &Client{dispatcher: dispatcher, session: session}
}

// Dispatcher returns the underlying dispatcher.
func (c *Client) Dispatcher() *dispatch.Dispatcher {
	return c.dispatcher
}

// Session returns the session context.
func (c *Client) Session() *session.Context {
	return c.session
}

func (c *Client) call(ctx context.Context, operation dispatch.Operation, path string, params any, out any) error {
	var err error = ErrHandled
	c.dispatcher.Dispatch(ctx, operation, path, params, func(body json.RawMessage) {
		err = nil
		if out == nil || body == nil {
			return
		}
		if uErr := json.Unmarshal(body, out); uErr != nil {
			err = fmt.Errorf("failed to decode %v response: %w", path, uErr)
		}
	}, func(body json.RawMessage) {
		err = NewError(body)
	})
	return err
}
