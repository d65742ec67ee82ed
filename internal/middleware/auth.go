package middleware

import (
	"log/slog"
	"net/http"

	"github.com/hongminglow/megasena-be/internal/auth"
	"github.com/hongminglow/megasena-be/internal/http/respond"
)

// TokenVerifier decodes a raw token into the caller's identity.
type TokenVerifier interface {
	Verify(raw string) (auth.Identity, error)
}

// RequireAuth rejects requests whose Authorization header is missing,
// revoked, or fails verification, and otherwise stores the decoded identity
// in the request context. The header value is used verbatim: no "Bearer "
// prefix is stripped, and revocation is an exact string match.
func RequireAuth(tokens TokenVerifier, revoked auth.RevocationList) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("Authorization")
			if raw == "" {
				respond.Error(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			isRevoked, err := revoked.IsRevoked(r.Context(), raw)
			if err != nil {
				slog.ErrorContext(r.Context(), "check token revocation failed", slog.Any("error", err))
				respond.Error(w, http.StatusInternalServerError, "failed to verify token")
				return
			}
			if isRevoked {
				respond.Error(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			identity, err := tokens.Verify(raw)
			if err != nil {
				respond.Error(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
		})
	}
}
