package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hongminglow/megasena-be/internal/auth"
	"github.com/hongminglow/megasena-be/internal/http/respond"
	"github.com/hongminglow/megasena-be/internal/models"
	"github.com/hongminglow/megasena-be/internal/models/dto"
	"github.com/hongminglow/megasena-be/internal/storage"
	"github.com/hongminglow/megasena-be/internal/validation"
)

// UserHandler serves registration and the user listing.
type UserHandler struct {
	store storage.UserStore
}

// NewUserHandler constructs the handler.
func NewUserHandler(store storage.UserStore) *UserHandler {
	return &UserHandler{store: store}
}

// Register attaches the user routes. Neither requires a token.
func (h *UserHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /users", h.handleList)
	mux.HandleFunc("POST /users", h.handleCreate)
}

func (h *UserHandler) handleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		respondStoreError(w, r, err, "list users")
		return
	}
	respond.JSON(w, http.StatusOK, dto.UsersResponse{Users: users})
}

func (h *UserHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondBadInput(w, err)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := validation.Struct(req); err != nil {
		respondBadInput(w, err)
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.ErrorContext(r.Context(), "hash password failed", slog.Any("error", err))
		respond.Error(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	created, err := h.store.CreateUser(r.Context(), models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			respond.Error(w, http.StatusConflict, "email already registered")
			return
		}
		respondStoreError(w, r, err, "create user")
		return
	}
	respond.JSON(w, http.StatusCreated, dto.UserResponse{User: created})
}
