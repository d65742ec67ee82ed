package server

import (
	"context"
	"net/http"
	"time"

	"github.com/hongminglow/megasena-be/internal/auth"
	"github.com/hongminglow/megasena-be/internal/config"
	"github.com/hongminglow/megasena-be/internal/http/handlers"
	"github.com/hongminglow/megasena-be/internal/middleware"
	"github.com/hongminglow/megasena-be/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.Store, revoked auth.RevocationList) *Server {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	limiter := middleware.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateBurst).TrustForwardedHeaders(cfg.TrustProxy)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           NewHandler(cfg, store, tokens, revoked, limiter),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// NewHandler builds the routed handler with the global middleware stack.
// A nil limiter leaves login unthrottled.
func NewHandler(cfg config.Config, store storage.Store, tokens *auth.TokenManager, revoked auth.RevocationList, limiter *middleware.RateLimiter) http.Handler {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(tokens, revoked)

	var pinger handlers.Pinger
	if p, ok := store.(handlers.Pinger); ok {
		pinger = p
	}
	handlers.NewHealthHandler(time.Now(), pinger).Register(mux)

	authHandler := handlers.NewAuthHandler(store, tokens, revoked)
	if limiter != nil {
		authHandler.WithLoginGuard(limiter.Middleware)
	}
	authHandler.Register(mux, requireAuth)

	handlers.NewUserHandler(store).Register(mux)
	handlers.NewMegaSenaHandler(store).Register(mux, requireAuth)
	handlers.NewSavedNumbersHandler(store).Register(mux, requireAuth)

	return middleware.Chain(mux,
		middleware.RequestID,
		middleware.Logging,
		middleware.Recover,
		middleware.CORS(cfg.CORSOrigins),
	)
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
