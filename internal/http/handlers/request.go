package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/hongminglow/megasena-be/internal/http/respond"
	"github.com/hongminglow/megasena-be/internal/storage"
	"github.com/hongminglow/megasena-be/internal/validation"
)

// Middleware decorates a single route, e.g. with the auth gate.
type Middleware = func(http.Handler) http.Handler

const maxBodyBytes = 1 << 20

// decodeJSON reads the body into dst. Type mismatches come back as a
// *validation.Error naming the offending field.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return &validation.Error{Fields: map[string]string{
				typeErr.Field: "must be " + jsonKind(typeErr.Type),
			}}
		}
		return err
	}
	return nil
}

// respondBadInput writes field-level detail when available and a generic
// message otherwise.
func respondBadInput(w http.ResponseWriter, err error) {
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		respond.Validation(w, vErr.Fields)
		return
	}
	respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
}

// respondStoreError maps storage sentinels to 404/409 and logs everything
// else as a 500.
func respondStoreError(w http.ResponseWriter, r *http.Request, err error, action string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "record not found")
	case errors.Is(err, storage.ErrAlreadyExists):
		respond.Error(w, http.StatusConflict, "record already exists")
	default:
		slog.ErrorContext(r.Context(), action+" failed", slog.Any("error", err))
		respond.Error(w, http.StatusInternalServerError, "failed to "+action)
	}
}

func jsonKind(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Bool:
		return "a boolean"
	case reflect.String:
		return "a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return "an object"
	}
}
