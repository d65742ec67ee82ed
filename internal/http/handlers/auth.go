package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hongminglow/megasena-be/internal/auth"
	"github.com/hongminglow/megasena-be/internal/http/respond"
	"github.com/hongminglow/megasena-be/internal/models/dto"
	"github.com/hongminglow/megasena-be/internal/storage"
)

// AuthHandler owns login, logout and the authenticated-user lookup.
type AuthHandler struct {
	store      storage.UserStore
	tokens     *auth.TokenManager
	revoked    auth.RevocationList
	loginGuard Middleware
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.UserStore, tokens *auth.TokenManager, revoked auth.RevocationList) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens, revoked: revoked}
}

// WithLoginGuard wraps the login route, typically with a rate limiter.
func (h *AuthHandler) WithLoginGuard(guard Middleware) *AuthHandler {
	h.loginGuard = guard
	return h
}

// Register attaches auth routes to the mux.
func (h *AuthHandler) Register(mux *http.ServeMux, requireAuth Middleware) {
	var login http.Handler = http.HandlerFunc(h.handleLogin)
	if h.loginGuard != nil {
		login = h.loginGuard(login)
	}
	mux.Handle("POST /auth/login", login)
	mux.HandleFunc("POST /auth/logout", h.handleLogout)
	mux.Handle("GET /auth/user", requireAuth(http.HandlerFunc(h.handleCurrentUser)))
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondBadInput(w, err)
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		respond.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	user, err := h.store.FindByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		slog.ErrorContext(r.Context(), "login failed: fetch user", slog.Any("error", err))
		respond.Error(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		respond.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		slog.ErrorContext(r.Context(), "login failed: sign token", slog.Any("error", err))
		respond.Error(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	respond.JSON(w, http.StatusOK, dto.LoginResponse{Token: token})
}

// handleLogout only requires the header to be present; the raw value is
// revoked whether or not it would verify.
func (h *AuthHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	raw := r.Header.Get("Authorization")
	if raw == "" {
		respond.Error(w, http.StatusUnauthorized, "authentication token not provided")
		return
	}

	expiresAt, ok := h.tokens.ExpiresAt(raw)
	if !ok {
		expiresAt = time.Now().Add(h.tokens.TTL())
	}
	if err := h.revoked.Revoke(r.Context(), raw, expiresAt); err != nil {
		slog.ErrorContext(r.Context(), "logout failed: revoke token", slog.Any("error", err))
		respond.Error(w, http.StatusInternalServerError, "failed to log out")
		return
	}
	respond.JSON(w, http.StatusOK, dto.MessageResponse{Message: "logged out successfully"})
}

// handleCurrentUser trusts the decoded token; it does not reload the user.
func (h *AuthHandler) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}
	respond.JSON(w, http.StatusOK, dto.AuthUserResponse{User: identity})
}
