package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/hongminglow/megasena-be/internal/http/respond"
	"github.com/hongminglow/megasena-be/internal/models/dto"
	"github.com/hongminglow/megasena-be/internal/storage"
	"github.com/hongminglow/megasena-be/internal/validation"
)

// MegaSenaHandler serves the draw result endpoints.
type MegaSenaHandler struct {
	store storage.MegaSenaStore
}

// NewMegaSenaHandler constructs the handler.
func NewMegaSenaHandler(store storage.MegaSenaStore) *MegaSenaHandler {
	return &MegaSenaHandler{store: store}
}

// Register mounts the routes. Listing and deleting require a valid token;
// publishing a result does not.
func (h *MegaSenaHandler) Register(mux *http.ServeMux, requireAuth Middleware) {
	mux.Handle("GET /resultados-megasena", requireAuth(http.HandlerFunc(h.handleList)))
	mux.HandleFunc("POST /resultados-megasena", h.handleCreate)
	mux.Handle("DELETE /resultados-megasena/{id}", requireAuth(http.HandlerFunc(h.handleDelete)))
}

func (h *MegaSenaHandler) handleList(w http.ResponseWriter, r *http.Request) {
	results, err := h.store.ListResults(r.Context())
	if err != nil {
		respondStoreError(w, r, err, "list results")
		return
	}
	respond.JSON(w, http.StatusOK, dto.MegaSenaResultsResponse{Results: results})
}

func (h *MegaSenaHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMegaSenaRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondBadInput(w, err)
		return
	}
	if err := validation.Struct(req); err != nil {
		respondBadInput(w, err)
		return
	}

	created, err := h.store.CreateResult(r.Context(), req.ToModel())
	if err != nil {
		respondStoreError(w, r, err, "create result")
		return
	}
	respond.JSON(w, http.StatusCreated, dto.MegaSenaResultResponse{Result: created})
}

func (h *MegaSenaHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	deleted, err := h.store.DeleteResult(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, fmt.Sprintf("result %s not found", id))
			return
		}
		respondStoreError(w, r, err, "delete result")
		return
	}
	respond.JSON(w, http.StatusOK, dto.DeleteMegaSenaResponse{
		Message: fmt.Sprintf("Jogo %s excluído com sucesso.", id),
		Deleted: deleted,
	})
}
