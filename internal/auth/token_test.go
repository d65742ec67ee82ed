package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/megasena-be/internal/models"
)

func newTestManager() *TokenManager {
	return NewTokenManager("test-secret", "megasena-test", time.Hour)
}

func TestGenerateVerifyRoundTrip(t *testing.T) {
	tokens := newTestManager()
	user := models.User{ID: "9a4c", Email: "ana@x.com"}

	raw, err := tokens.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	id, err := tokens.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, Identity{UserID: "9a4c", Email: "ana@x.com"}, id)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	tokens := newTestManager()
	issuedAt := time.Now()
	tokens.now = func() time.Time { return issuedAt }

	raw, err := tokens.Generate(models.User{ID: "u1", Email: "u1@x.com"})
	require.NoError(t, err)

	tokens.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	_, err = tokens.Verify(raw)
	require.NoError(t, err)

	tokens.now = func() time.Time { return issuedAt.Add(61 * time.Minute) }
	_, err = tokens.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	raw, err := NewTokenManager("other-secret", "megasena-test", time.Hour).
		Generate(models.User{ID: "u1", Email: "u1@x.com"})
	require.NoError(t, err)

	_, err = newTestManager().Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsMalformedAndUnsigned(t *testing.T) {
	tokens := newTestManager()

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := tokens.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", raw)
	}

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		UserID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "megasena-test",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = tokens.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyIsExactAboutWhitespace(t *testing.T) {
	tokens := newTestManager()
	raw, err := tokens.Generate(models.User{ID: "u1", Email: "u1@x.com"})
	require.NoError(t, err)

	_, err = tokens.Verify("Bearer " + raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.False(t, strings.HasPrefix(raw, "Bearer"))
}

func TestExpiresAt(t *testing.T) {
	tokens := newTestManager()
	issuedAt := time.Unix(1_700_000_000, 0)
	tokens.now = func() time.Time { return issuedAt }

	raw, err := tokens.Generate(models.User{ID: "u1", Email: "u1@x.com"})
	require.NoError(t, err)

	exp, ok := tokens.ExpiresAt(raw)
	require.True(t, ok)
	assert.True(t, exp.Equal(issuedAt.Add(time.Hour)))

	_, ok = tokens.ExpiresAt("garbage")
	assert.False(t, ok)
}
