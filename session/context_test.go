package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/pybo/store"
)

func TestNew_Defaults(t *testing.T) {
	ctx := context.Background()
	storage := store.NewMemoryStorage()
	session, err := New(ctx, storage)
	require.NoError(t, err)

	assert.Equal(t, 0, session.Page.Get())
	assert.Equal(t, "", session.Keyword.Get())
	assert.Equal(t, "", session.Token())
	assert.Equal(t, "", session.Username.Get())
	assert.False(t, session.IsLogin.Get())

	assert.Equal(t, []string{KeyAccessToken, KeyIsLogin, KeyKeyword, KeyPage, KeyUsername}, session.Keys())

	expect := map[string]string{
		KeyPage:        "0",
		KeyKeyword:     `""`,
		KeyAccessToken: `""`,
		KeyUsername:    `""`,
		KeyIsLogin:     "false",
	}
	for key, value := range expect {
		actual, ok, err := storage.GetItem(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok, key)
		assert.Equal(t, value, actual, key)
	}
}

func TestContext_SignInSignOut(t *testing.T) {
	ctx := context.Background()
	storage := store.NewMemoryStorage()
	session, err := New(ctx, storage)
	require.NoError(t, err)
	require.NoError(t, session.Page.Set(ctx, 4))

	require.NoError(t, session.SignIn(ctx, "tkn", "alice"))
	restored, err := New(ctx, storage)
	require.NoError(t, err)
	assert.Equal(t, "tkn", restored.Token())
	assert.Equal(t, "alice", restored.Username.Get())
	assert.True(t, restored.IsLogin.Get())

	require.NoError(t, session.SignOut(ctx))
	restored, err = New(ctx, storage)
	require.NoError(t, err)
	assert.Equal(t, "", restored.Token())
	assert.Equal(t, "", restored.Username.Get())
	assert.False(t, restored.IsLogin.Get())
	// navigation state is untouched by sign out
	assert.Equal(t, 4, restored.Page.Get())
}

func TestContext_Claims(t *testing.T) {
	ctx := context.Background()
	session, err := New(ctx, store.NewMemoryStorage())
	require.NoError(t, err)

	_, err = session.Claims()
	assert.ErrorIs(t, err, ErrNoToken)

	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(expiry),
	}).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	require.NoError(t, session.SignIn(ctx, signed, "alice"))

	claims, err := session.Claims()
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.True(t, expiry.Equal(claims.ExpiresAt))
	assert.False(t, claims.Expired(time.Now()))
	assert.True(t, claims.Expired(expiry.Add(time.Second)))

	require.NoError(t, session.AccessToken.Set(ctx, "opaque"))
	_, err = session.Claims()
	assert.Error(t, err)
}

func TestContext_TokenSource(t *testing.T) {
	ctx := context.Background()
	session, err := New(ctx, store.NewMemoryStorage())
	require.NoError(t, err)
	source := session.TokenSource()

	token, err := source.Token()
	require.NoError(t, err)
	assert.Equal(t, "", token.AccessToken)

	require.NoError(t, session.SignIn(ctx, "abc", "bob"))
	token, err = source.Token()
	require.NoError(t, err)
	assert.Equal(t, "abc", token.AccessToken)
	assert.Equal(t, "Bearer", token.Type())
}
