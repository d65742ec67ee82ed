package handlers

import (
	"errors"
	"net/http"

	"github.com/hongminglow/megasena-be/internal/auth"
	"github.com/hongminglow/megasena-be/internal/http/respond"
	"github.com/hongminglow/megasena-be/internal/models/dto"
	"github.com/hongminglow/megasena-be/internal/storage"
)

// SavedNumbersHandler lets a signed-in user keep one list of numbers.
type SavedNumbersHandler struct {
	store storage.SavedNumbersStore
}

// NewSavedNumbersHandler constructs the handler.
func NewSavedNumbersHandler(store storage.SavedNumbersStore) *SavedNumbersHandler {
	return &SavedNumbersHandler{store: store}
}

// Register mounts both routes behind requireAuth.
func (h *SavedNumbersHandler) Register(mux *http.ServeMux, requireAuth Middleware) {
	mux.Handle("POST /user/saved-numbers", requireAuth(http.HandlerFunc(h.handleSave)))
	mux.Handle("GET /user/saved-numbers/{userId}", requireAuth(http.HandlerFunc(h.handleGet)))
}

// handleSave stores the list as sent. Entries are not checked.
func (h *SavedNumbersHandler) handleSave(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok || identity.UserID == "" {
		respond.Error(w, http.StatusUnauthorized, "user not authenticated")
		return
	}
	var req dto.SaveNumbersRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondBadInput(w, err)
		return
	}

	_, err := h.store.UpsertSavedNumbers(r.Context(), identity.UserID, req.Numbers)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		// The token outlived its user.
		respond.Error(w, http.StatusUnauthorized, "user not authenticated")
		return
	case err != nil:
		respondStoreError(w, r, err, "save numbers")
		return
	}
	respond.JSON(w, http.StatusOK, dto.MessageResponse{Message: "numbers saved successfully"})
}

func (h *SavedNumbersHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok || identity.UserID == "" {
		respond.Error(w, http.StatusUnauthorized, "user not authenticated")
		return
	}
	if r.PathValue("userId") != identity.UserID {
		respond.Error(w, http.StatusForbidden, "access denied")
		return
	}

	saved, err := h.store.FindSavedNumbers(r.Context(), identity.UserID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		respond.JSON(w, http.StatusOK, dto.SavedNumbersResponse{SavedNumbers: nil})
	case err != nil:
		respondStoreError(w, r, err, "fetch saved numbers")
	default:
		respond.JSON(w, http.StatusOK, dto.SavedNumbersResponse{SavedNumbers: &saved})
	}
}
