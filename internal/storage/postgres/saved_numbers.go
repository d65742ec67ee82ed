package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hongminglow/megasena-be/internal/models"
	"github.com/hongminglow/megasena-be/internal/storage"
)

// UpsertSavedNumbers relies on the unique user_id column so repeated saves
// overwrite the single row instead of adding new ones.
func (s *Store) UpsertSavedNumbers(ctx context.Context, userID string, numbers []string) (models.SavedNumbers, error) {
	const query = `
		INSERT INTO saved_numbers (id, user_id, numbers, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET numbers = EXCLUDED.numbers, updated_at = NOW()
		RETURNING id, user_id, numbers, updated_at;
	`
	row := s.pool.QueryRow(ctx, query, uuid.NewString(), userID, nonNil(numbers))
	saved, err := scanSavedNumbers(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return models.SavedNumbers{}, storage.ErrNotFound
		}
		return models.SavedNumbers{}, fmt.Errorf("upsert saved numbers: %w", err)
	}
	return saved, nil
}

// FindSavedNumbers fetches the list kept by userID.
func (s *Store) FindSavedNumbers(ctx context.Context, userID string) (models.SavedNumbers, error) {
	const query = `
	SELECT id, user_id, numbers, updated_at
	FROM saved_numbers
	WHERE user_id = $1;
	`
	return scanSavedNumbers(s.pool.QueryRow(ctx, query, userID))
}

func scanSavedNumbers(row pgx.Row) (models.SavedNumbers, error) {
	var saved models.SavedNumbers
	if err := row.Scan(&saved.ID, &saved.UserID, &saved.Numbers, &saved.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.SavedNumbers{}, storage.ErrNotFound
		}
		return models.SavedNumbers{}, err
	}
	saved.Numbers = nonNil(saved.Numbers)
	return saved, nil
}
