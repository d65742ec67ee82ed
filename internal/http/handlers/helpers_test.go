package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hongminglow/megasena-be/internal/auth"
	"github.com/hongminglow/megasena-be/internal/middleware"
	"github.com/hongminglow/megasena-be/internal/storage"
	"github.com/hongminglow/megasena-be/internal/storage/memory"
)

type testEnv struct {
	handler http.Handler
	store   *memory.Store
	tokens  *auth.TokenManager
	revoked *auth.MemoryRevocationList
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithStore(t, memory.NewStore())
}

func newTestEnvWithStore(t *testing.T, store storage.Store) *testEnv {
	t.Helper()
	env := &testEnv{
		tokens:  auth.NewTokenManager("handler-test-secret", "handler-test", time.Hour),
		revoked: auth.NewMemoryRevocationList(),
	}
	if mem, ok := store.(*memory.Store); ok {
		env.store = mem
	}

	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(env.tokens, env.revoked)
	NewAuthHandler(store, env.tokens, env.revoked).Register(mux, requireAuth)
	NewUserHandler(store).Register(mux)
	NewMegaSenaHandler(store).Register(mux, requireAuth)
	NewSavedNumbersHandler(store).Register(mux, requireAuth)
	env.handler = mux
	return env
}

// do sends body (marshalled unless it is already a string) with the raw
// token in the Authorization header when non-empty.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

// signUp registers a user, logs in, and returns the token and user id.
func (e *testEnv) signUp(t *testing.T, name, email, password string) (string, string) {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/users", "", map[string]string{
		"name": name, "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	decodeBody(t, rec, &created)

	rec = e.do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var login struct {
		Token string `json:"token"`
	}
	decodeBody(t, rec, &login)
	require.NotEmpty(t, login.Token)
	return login.Token, created.User.ID
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst), rec.Body.String())
}
