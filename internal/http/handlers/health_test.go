package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func serveHealth(t *testing.T, pinger Pinger) (int, map[string]string) {
	t.Helper()
	mux := http.NewServeMux()
	NewHealthHandler(time.Now().Add(-90*time.Second), pinger).Register(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	var body map[string]string
	decodeBody(t, rec, &body)
	return rec.Code, body
}

func TestHealthReportsStorage(t *testing.T) {
	status, body := serveHealth(t, pingFunc(func(context.Context) error { return nil }))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["storage"])
	assert.Equal(t, "1m30s", body["uptime"])

	status, body = serveHealth(t, pingFunc(func(context.Context) error { return errors.New("refused") }))
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "unavailable", body["storage"])
}

func TestHealthWithoutPinger(t *testing.T) {
	status, body := serveHealth(t, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", body["status"])
}
