package memory

import (
	"context"
	"sync"
)

// SessionRevoker records revocations in memory. Used when redis is not
// configured and in tests.
type SessionRevoker struct {
	mu      sync.Mutex
	revoked map[string]struct{}
}

func NewSessionRevoker() *SessionRevoker {
	return &SessionRevoker{revoked: make(map[string]struct{})}
}

func (s *SessionRevoker) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil // idempotent
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[token] = struct{}{}
	return nil
}

// Revoked reports whether a token was revoked. Test helper.
func (s *SessionRevoker) Revoked(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.revoked[token]
	return ok
}
