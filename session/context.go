package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/viant/pybo/store"
	"golang.org/x/oauth2"
)

// Storage keys.
const (
	KeyPage        = "page"
	KeyKeyword     = "keyword"
	KeyAccessToken = "access_token"
	KeyUsername    = "username"
	KeyIsLogin     = "is_login"
)

// Context groups the persisted session (access token, username, login flag) and
// navigation (page, keyword) state.
type Context struct {
	Page        *store.Persisted[int]
	Keyword     *store.Persisted[string]
	AccessToken *store.Persisted[string]
	Username    *store.Persisted[string]
	IsLogin     *store.Persisted[bool]
	storage     store.Storage
}

// Claims describes the access token payload.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// Expired reports whether the token expiry has passed at now.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// ErrNoToken is returned by Claims when no access token is stored.
var ErrNoToken = errors.New("session: no access token")

// New restores session state from storage, missing values start empty.
func New(ctx context.Context, storage store.Storage) (*Context, error) {
	ret := &Context{storage: storage}
	var err error
	if ret.Page, err = store.New(ctx, storage, KeyPage, 0); err != nil {
		return nil, err
	}
	if ret.Keyword, err = store.New(ctx, storage, KeyKeyword, ""); err != nil {
		return nil, err
	}
	if ret.AccessToken, err = store.New(ctx, storage, KeyAccessToken, ""); err != nil {
		return nil, err
	}
	if ret.Username, err = store.New(ctx, storage, KeyUsername, ""); err != nil {
		return nil, err
	}
	if ret.IsLogin, err = store.New(ctx, storage, KeyIsLogin, false); err != nil {
		return nil, err
	}
	return ret, nil
}

// Keys lists the keys held by the backing storage, nil when it cannot list them.
func (c *Context) Keys() []string {
	return store.Keys(c.storage)
}

// Token returns the current access token, empty when signed out.
func (c *Context) Token() string {
	return c.AccessToken.Get()
}

// SignIn records a successful login.
func (c *Context) SignIn(ctx context.Context, token, username string) error {
	if err := c.AccessToken.Set(ctx, token); err != nil {
		return err
	}
	if err := c.Username.Set(ctx, username); err != nil {
		return err
	}
	return c.IsLogin.Set(ctx, true)
}

// SignOut clears the access token, username and login flag.
func (c *Context) SignOut(ctx context.Context) error {
	var errs []error
	errs = append(errs, c.AccessToken.Set(ctx, ""))
	errs = append(errs, c.Username.Set(ctx, ""))
	errs = append(errs, c.IsLogin.Set(ctx, false))
	return errors.Join(errs...)
}

// Claims decodes the stored access token without verifying its signature;
// the signing key only lives on the server.
func (c *Context) Claims() (*Claims, error) {
	token := c.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	registered := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, registered); err != nil {
		return nil, fmt.Errorf("failed to parse access token: %w", err)
	}
	ret := &Claims{Subject: registered.Subject}
	if registered.ExpiresAt != nil {
		ret.ExpiresAt = registered.ExpiresAt.Time
	}
	return ret, nil
}

// TokenSource exposes the stored access token to HTTP transports.
func (c *Context) TokenSource() oauth2.TokenSource {
	return tokenSource{session: c}
}

type tokenSource struct {
	session *Context
}

func (s tokenSource) Token() (*oauth2.Token, error) {
	return &oauth2.Token{AccessToken: s.session.Token(), TokenType: "Bearer"}, nil
}
