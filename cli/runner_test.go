package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/pybo/api"
)

const questionJSON = `{"id":1,"subject":"pybo","content":"what is pybo?","create_date":"2024-01-02T03:04:05","answers":[{"id":7,"content":"a board","create_date":"2024-01-02T04:00:00","user":{"id":2,"username":"bob","email":"bob@x.io"},"question_id":1,"modify_date":null,"voter":[]}],"user":{"id":1,"username":"alice","email":"alice@x.io"},"modify_date":null,"voter":[]}`

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func newBackend(t *testing.T, token string) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/user/login", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		writeJSON(w, http.StatusOK, `{"access_token":"`+token+`","token_type":"bearer","username":"`+r.PostForm.Get("username")+`"}`)
	})
	mux.HandleFunc("GET /api/question/list", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		writeJSON(w, http.StatusOK, `{"total":11,"question_list":[`+questionJSON+`],"page":"`+query.Get("page")+`","keyword":"`+query.Get("keyword")+`"}`)
	})
	mux.HandleFunc("GET /api/question/detail/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, questionJSON)
	})
	mux.HandleFunc("POST /api/question/create", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"detail":"Could not validate credentials"}`)
	})
	mux.HandleFunc("DELETE /api/question/delete", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"detail":"no permission to delete"}`)
	})
	mux.HandleFunc("POST /api/answer/vote", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return httptest.NewServer(mux)
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": expiresAt.Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

type harness struct {
	t       *testing.T
	globals []string
}

func (h *harness) run(args ...string) (string, string, error) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	err := New(stdout, stderr).Run(context.Background(), append(append([]string{}, h.globals...), args...))
	return stdout.String(), stderr.String(), err
}

func TestApp_Run(t *testing.T) {
	server := newBackend(t, signedToken(t, time.Now().Add(time.Hour)))
	defer server.Close()
	h := &harness{t: t, globals: []string{"-u", server.URL, "-s", filepath.Join(t.TempDir(), "storage.json")}}

	stdout, _, err := h.run("login", "alice", "-p", "pw")
	require.NoError(t, err)
	assert.Equal(t, "signed in as alice\n", stdout)

	stdout, _, err = h.run("status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "signed in as alice")
	assert.Contains(t, stdout, "token:    valid until")
	assert.Contains(t, stdout, "stored:   access_token, is_login, keyword, page, username")

	var useCases = []struct {
		description string
		args        []string
		expect      []string
	}{
		{description: "first page", args: []string{"list"}, expect: []string{"ID", "pybo", "alice", "page 1 of 2, 11 questions"}},
		{description: "keyword", args: []string{"list", "-k", "pybo", "-p", "1"}, expect: []string{"page 2 of 2"}},
		{description: "remembered page", args: []string{"list"}, expect: []string{"page 2 of 2"}},
		{description: "new keyword resets page", args: []string{"list", "-k", "board"}, expect: []string{"page 1 of 2"}},
		{description: "clear", args: []string{"list", "--clear"}, expect: []string{"page 1 of 2"}},
		{description: "show", args: []string{"show", "1"}, expect: []string{"#1 pybo", "what is pybo?", "[7] by bob"}},
		{description: "vote answer", args: []string{"vote-answer", "7"}, expect: []string{"voted for answer 7"}},
		{description: "call", args: []string{"call", "get", "/api/question/list", "page=0", "keyword=pybo"}, expect: []string{`"page": "0"`, `"keyword": "pybo"`}},
	}
	for _, useCase := range useCases {
		stdout, _, err = h.run(useCase.args...)
		require.NoError(t, err, useCase.description)
		for _, expect := range useCase.expect {
			assert.Contains(t, stdout, expect, useCase.description)
		}
	}

	stdout, _, err = h.run("status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "page:     0")
	assert.Contains(t, stdout, "keyword:  \n")

	_, _, err = h.run("delete", "1")
	apiErr, ok := err.(*api.Error)
	require.True(t, ok)
	assert.Equal(t, "no permission to delete", apiErr.Detail)

	_, stderr, err := h.run("ask", "-t", "subject", "-m", "content")
	assert.ErrorIs(t, err, api.ErrHandled)
	assert.Contains(t, stderr, "error: login required")
	assert.Contains(t, stderr, "pybo login")

	stdout, _, err = h.run("status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "signed out")
}

func TestApp_Run_Errors(t *testing.T) {
	server := newBackend(t, "tkn")
	defer server.Close()
	h := &harness{t: t, globals: []string{"-u", server.URL, "-s", filepath.Join(t.TempDir(), "storage.json")}}

	var useCases = []struct {
		description string
		args        []string
	}{
		{description: "missing id", args: []string{"show"}},
		{description: "invalid id", args: []string{"vote", "x"}},
		{description: "missing password", args: []string{"login", "alice"}},
		{description: "unknown operation", args: []string{"call", "patch", "/api/x"}},
		{description: "invalid param", args: []string{"call", "get", "/api/x", "novalue"}},
		{description: "unknown command", args: []string{"nope"}},
	}
	for _, useCase := range useCases {
		_, _, err := h.run(useCase.args...)
		assert.Error(t, err, useCase.description)
	}

	stdout, _, err := h.run("-h")
	assert.NoError(t, err)
	assert.Contains(t, stdout, "Usage")
}

func TestCallParams(t *testing.T) {
	params, err := callParams([]string{"page=1", "keyword=pybo", "flag=true", "empty=", "obj={\"a\":1}"})
	require.NoError(t, err)
	assert.EqualValues(t, "1", params["page"].(interface{ String() string }).String())
	assert.Equal(t, "pybo", params["keyword"])
	assert.Equal(t, true, params["flag"])
	assert.Equal(t, "", params["empty"])
	assert.Equal(t, `{"a":1}`, params["obj"])

	params, err = callParams(nil)
	require.NoError(t, err)
	assert.Nil(t, params)
}

func TestPages(t *testing.T) {
	assert.Equal(t, 1, pages(0, 10))
	assert.Equal(t, 2, pages(11, 10))
	assert.Equal(t, 1, pages(10, 10))
	assert.Equal(t, 3, pages(21, 0))
}
