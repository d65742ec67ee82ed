package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/hongminglow/megasena-be/internal/http/respond"
)

// Pinger is implemented by stores that can report their own reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler returns uptime and whether storage answers.
type HealthHandler struct {
	startedAt time.Time
	storage   Pinger
}

// NewHealthHandler creates a health endpoint handler. A nil pinger skips the storage check.
func NewHealthHandler(startedAt time.Time, storage Pinger) *HealthHandler {
	return &HealthHandler{startedAt: startedAt, storage: storage}
}

// Register wires the handler into a ServeMux.
func (h *HealthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.handle)
}

func (h *HealthHandler) handle(w http.ResponseWriter, r *http.Request) {
	status, storageState := http.StatusOK, "ok"
	if h.storage != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.storage.Ping(ctx); err != nil {
			slog.WarnContext(r.Context(), "health: storage ping failed", slog.Any("error", err))
			status, storageState = http.StatusServiceUnavailable, "unavailable"
		}
	}
	respond.JSON(w, status, map[string]string{
		"status":  http.StatusText(status),
		"uptime":  time.Since(h.startedAt).Truncate(time.Second).String(),
		"storage": storageState,
	})
}
