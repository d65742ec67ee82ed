package storage

import (
	"context"
	"errors"

	"github.com/hongminglow/megasena-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures persistence operations needed by the user and auth handlers.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	// ListUsers returns every user with their saved numbers attached.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// SavedNumbersStore keeps at most one number list per user.
type SavedNumbersStore interface {
	// UpsertSavedNumbers replaces the user's list or creates it on first save.
	UpsertSavedNumbers(ctx context.Context, userID string, numbers []string) (models.SavedNumbers, error)
	FindSavedNumbers(ctx context.Context, userID string) (models.SavedNumbers, error)
}

// MegaSenaStore persists draw results together with their child rows.
type MegaSenaStore interface {
	// CreateResult writes the result and all of its children atomically.
	CreateResult(ctx context.Context, result models.MegaSenaResult) (models.MegaSenaResult, error)
	ListResults(ctx context.Context) ([]models.MegaSenaResult, error)
	// DeleteResult removes the result and its children and returns what was removed.
	DeleteResult(ctx context.Context, id string) (models.MegaSenaResult, error)
}

// Store is the full persistence surface the server is wired with.
type Store interface {
	UserStore
	SavedNumbersStore
	MegaSenaStore
	Close()
}
