// Package memory is an in-process storage driver used for local runs and tests.
package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hongminglow/megasena-be/internal/models"
	"github.com/hongminglow/megasena-be/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps every record in maps behind a single mutex, which also makes
// each multi-row write atomic.
type Store struct {
	mu      sync.RWMutex
	users   map[string]models.User
	byEmail map[string]string
	saved   map[string]models.SavedNumbers
	results map[string]models.MegaSenaResult
	now     func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:   make(map[string]models.User),
		byEmail: make(map[string]string),
		saved:   make(map[string]models.SavedNumbers),
		results: make(map[string]models.MegaSenaResult),
		now:     time.Now,
	}
}

// Close is a no-op.
func (s *Store) Close() {}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error {
	return nil
}

// CreateUser assigns an ID and creation time. Emails are unique.
func (s *Store) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[user.Email]; taken {
		return models.User{}, storage.ErrAlreadyExists
	}
	user.ID = uuid.NewString()
	user.CreatedAt = s.now().UTC()
	user.SavedNumbers = nil
	s.users[user.ID] = user
	s.byEmail[user.Email] = user.ID
	return user, nil
}

// FindByEmail looks a user up by exact email.
func (s *Store) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return s.users[id], nil
}

// ListUsers returns every user with saved numbers attached, oldest first.
func (s *Store) ListUsers(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		if saved, ok := s.saved[u.ID]; ok {
			saved.Numbers = slices.Clone(saved.Numbers)
			u.SavedNumbers = &saved
		}
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		if !users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].CreatedAt.Before(users[j].CreatedAt)
		}
		return users[i].ID < users[j].ID
	})
	return users, nil
}

// UpsertSavedNumbers replaces the user's list, creating it on first save.
func (s *Store) UpsertSavedNumbers(_ context.Context, userID string, numbers []string) (models.SavedNumbers, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return models.SavedNumbers{}, storage.ErrNotFound
	}
	saved, ok := s.saved[userID]
	if !ok {
		saved = models.SavedNumbers{ID: uuid.NewString(), UserID: userID}
	}
	saved.Numbers = slices.Clone(numbers)
	if saved.Numbers == nil {
		saved.Numbers = []string{}
	}
	saved.UpdatedAt = s.now().UTC()
	s.saved[userID] = saved
	return cloneSaved(saved), nil
}

// FindSavedNumbers returns storage.ErrNotFound when nothing was saved.
func (s *Store) FindSavedNumbers(_ context.Context, userID string) (models.SavedNumbers, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	saved, ok := s.saved[userID]
	if !ok {
		return models.SavedNumbers{}, storage.ErrNotFound
	}
	return cloneSaved(saved), nil
}

// SavedNumbersCount reports how many saved-number rows exist.
func (s *Store) SavedNumbersCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.saved)
}

// CreateResult stores the result with its winners and prize tiers.
func (s *Store) CreateResult(_ context.Context, result models.MegaSenaResult) (models.MegaSenaResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result.ID = uuid.NewString()
	result.CreatedAt = s.now().UTC()
	winners := make([]models.MunicipalWinner, len(result.MunicipalWinners))
	for i, w := range result.MunicipalWinners {
		w.ID = uuid.NewString()
		w.ResultID = result.ID
		winners[i] = w
	}
	tiers := make([]models.PrizeTier, len(result.PrizeTiers))
	for i, p := range result.PrizeTiers {
		p.ID = uuid.NewString()
		p.ResultID = result.ID
		tiers[i] = p
	}
	result.MunicipalWinners = winners
	result.PrizeTiers = tiers
	s.results[result.ID] = result
	return cloneResult(result), nil
}

// ListResults returns results newest draw first.
func (s *Store) ListResults(_ context.Context) ([]models.MegaSenaResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]models.MegaSenaResult, 0, len(s.results))
	for _, r := range s.results {
		results = append(results, cloneResult(r))
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].DrawNumber != results[j].DrawNumber {
			return results[i].DrawNumber > results[j].DrawNumber
		}
		return strings.Compare(results[i].ID, results[j].ID) < 0
	})
	return results, nil
}

// DeleteResult removes a result and returns it as it was.
func (s *Store) DeleteResult(_ context.Context, id string) (models.MegaSenaResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, ok := s.results[id]
	if !ok {
		return models.MegaSenaResult{}, storage.ErrNotFound
	}
	delete(s.results, id)
	return result, nil
}

func cloneSaved(saved models.SavedNumbers) models.SavedNumbers {
	saved.Numbers = slices.Clone(saved.Numbers)
	return saved
}

func cloneResult(r models.MegaSenaResult) models.MegaSenaResult {
	r.NumbersInDrawOrder = slices.Clone(r.NumbersInDrawOrder)
	r.Numbers = slices.Clone(r.Numbers)
	r.TeamResults = slices.Clone(r.TeamResults)
	r.MunicipalWinners = slices.Clone(r.MunicipalWinners)
	r.PrizeTiers = slices.Clone(r.PrizeTiers)
	return r
}
