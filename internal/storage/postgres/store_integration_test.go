package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/megasena-be/internal/models"
	"github.com/hongminglow/megasena-be/internal/storage"
)

// newIntegrationStore connects to DATABASE_URL. These tests write real rows
// and only run with RUN_POSTGRES_INTEGRATION=true.
func newIntegrationStore(t *testing.T) *Store {
	t.Helper()
	if os.Getenv("RUN_POSTGRES_INTEGRATION") != "true" {
		t.Skip("set RUN_POSTGRES_INTEGRATION=true to run this integration test")
	}
	loadDotEnv()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("DATABASE_URL is required")
	}

	store, err := NewStore(context.Background(), dbURL)
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return store
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@example.com", prefix, time.Now().UnixNano())
}

func TestUserAndSavedNumbersIntegration(t *testing.T) {
	store := newIntegrationStore(t)
	ctx := context.Background()

	email := uniqueEmail("apitest")
	user, err := store.CreateUser(ctx, models.User{Name: "Ana", Email: email, PasswordHash: "hash"})
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = store.pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, user.ID) })

	_, err = store.CreateUser(ctx, models.User{Name: "Ana", Email: email, PasswordHash: "hash"})
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)

	found, err := store.FindByEmail(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = store.FindSavedNumbers(ctx, user.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	first, err := store.UpsertSavedNumbers(ctx, user.ID, []string{"01", "02"})
	require.NoError(t, err)
	second, err := store.UpsertSavedNumbers(ctx, user.ID, []string{"33"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, []string{"33"}, second.Numbers)

	var rows int
	require.NoError(t, store.pool.QueryRow(ctx, `SELECT COUNT(*) FROM saved_numbers WHERE user_id = $1`, user.ID).Scan(&rows))
	assert.Equal(t, 1, rows)

	_, err = store.UpsertSavedNumbers(ctx, "missing-user", []string{"01"})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestResultIntegration(t *testing.T) {
	store := newIntegrationStore(t)
	ctx := context.Background()

	city := "SAO PAULO"
	prize := 1234.5
	created, err := store.CreateResult(ctx, models.MegaSenaResult{
		DrawDate:         "16/03/2024",
		NextDrawDate:     "19/03/2024",
		Numbers:          []string{"05", "12"},
		DrawNumber:       int(time.Now().Unix() % 1_000_000),
		GameType:         "MEGA_SENA",
		MunicipalWinners: []models.MunicipalWinner{{Winners: 1, Municipality: &city, Position: 1, State: "SP"}},
		PrizeTiers:       []models.PrizeTier{{Tier: 1, PrizeAmount: &prize}, {Tier: 2}},
	})
	require.NoError(t, err)
	require.Len(t, created.MunicipalWinners, 1)
	require.Len(t, created.PrizeTiers, 2)

	results, err := store.ListResults(ctx)
	require.NoError(t, err)
	var listed *models.MegaSenaResult
	for i := range results {
		if results[i].ID == created.ID {
			listed = &results[i]
		}
	}
	require.NotNil(t, listed)
	assert.Len(t, listed.MunicipalWinners, 1)
	assert.Len(t, listed.PrizeTiers, 2)
	assert.Equal(t, &city, listed.MunicipalWinners[0].Municipality)

	deleted, err := store.DeleteResult(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, deleted.PrizeTiers, 2)

	var children int
	require.NoError(t, store.pool.QueryRow(ctx, `SELECT COUNT(*) FROM megasena_prize_tiers WHERE result_id = $1`, created.ID).Scan(&children))
	assert.Zero(t, children)

	_, err = store.DeleteResult(ctx, created.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func loadDotEnv() {
	paths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
	}
	for _, path := range paths {
		_ = godotenv.Overload(path)
	}
}
