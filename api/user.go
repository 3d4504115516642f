package api

import (
	"context"
	"errors"

	"github.com/viant/pybo/dispatch"
)

// SignUp registers a new user.
func (c *Client) SignUp(ctx context.Context, user *UserCreate) error {
	return c.call(ctx, dispatch.Post, "/api/user/create", user, nil)
}

// Login obtains an access token and records it in the session.
func (c *Client) Login(ctx context.Context, username, password string) (*Token, error) {
	token := &Token{}
	if err := c.call(ctx, dispatch.Login, "/api/user/login", &LoginForm{Username: username, Password: password}, token); err != nil {
		return nil, err
	}
	if token.AccessToken == "" {
		return nil, errors.New("login response has no access token")
	}
	if token.Username == "" {
		token.Username = username
	}
	if err := c.session.SignIn(ctx, token.AccessToken, token.Username); err != nil {
		return nil, err
	}
	return token, nil
}

// Logout clears the stored session, the server keeps no session state.
func (c *Client) Logout(ctx context.Context) error {
	return c.session.SignOut(ctx)
}
