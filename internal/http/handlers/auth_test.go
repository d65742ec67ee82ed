package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginCurrentUser(t *testing.T) {
	env := newTestEnv(t)
	token, userID := env.signUp(t, "Ana", "ana@x.com", "longenough")

	rec := env.do(t, http.MethodGet, "/auth/user", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user":{"userId":"`+userID+`","email":"ana@x.com"}}`, rec.Body.String())

	id, err := env.tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, id.UserID)
}

func TestLoginFailuresLookAlike(t *testing.T) {
	env := newTestEnv(t)
	env.signUp(t, "Ana", "ana@x.com", "longenough")

	wrongPassword := env.do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": "ana@x.com", "password": "wrongwrong"})
	unknownEmail := env.do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": "bob@x.com", "password": "longenough"})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	assert.JSONEq(t, `{"error":"invalid credentials"}`, wrongPassword.Body.String())
}

func TestLoginRejectsBadInput(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/auth/login", "", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": "ana@x.com"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"invalid credentials"}`, rec.Body.String())
}

func TestLogoutRevokesExactToken(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.signUp(t, "Ana", "ana@x.com", "longenough")

	rec := env.do(t, http.MethodPost, "/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"logged out successfully"}`, rec.Body.String())

	_, err := env.tokens.Verify(token)
	require.NoError(t, err, "token itself is still validly signed")

	for _, path := range []string{"/auth/user", "/resultados-megasena"} {
		rec = env.do(t, http.MethodGet, path, token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	rec = env.do(t, http.MethodPost, "/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code, "logging out twice is harmless")
	assert.Equal(t, 1, env.revoked.Len())
}

func TestLogoutRequiresHeaderOnly(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/auth/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPost, "/auth/logout", "not-a-jwt", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, env.revoked.Len())
}

func TestCurrentUserRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/auth/user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/auth/user", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
