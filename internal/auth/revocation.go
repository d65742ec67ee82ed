package auth

import (
	"context"
	"sync"
	"time"
)

// RevocationList holds raw token strings that were logged out before their
// natural expiry. Membership is an exact string match on the header value.
type RevocationList interface {
	Revoke(ctx context.Context, token string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// MemoryRevocationList keeps revoked tokens for the life of the process.
// Entries are never pruned.
type MemoryRevocationList struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

var _ RevocationList = (*MemoryRevocationList)(nil)

// NewMemoryRevocationList returns an empty list.
func NewMemoryRevocationList() *MemoryRevocationList {
	return &MemoryRevocationList{tokens: make(map[string]struct{})}
}

// Revoke adds token. The expiry is ignored.
func (m *MemoryRevocationList) Revoke(_ context.Context, token string, _ time.Time) error {
	m.mu.Lock()
	m.tokens[token] = struct{}{}
	m.mu.Unlock()
	return nil
}

// IsRevoked reports whether token was revoked.
func (m *MemoryRevocationList) IsRevoked(_ context.Context, token string) (bool, error) {
	m.mu.RLock()
	_, ok := m.tokens[token]
	m.mu.RUnlock()
	return ok, nil
}

// Len reports how many distinct tokens have been revoked.
func (m *MemoryRevocationList) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tokens)
}
