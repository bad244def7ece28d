package session

import (
	"sync"

	"github.com/digicard/admin-auth/internal/domain"
)

// MemoryStore is the in-memory Store used by tests.
type MemoryStore struct {
	mu  sync.Mutex
	u   domain.SessionUser
	set bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get() (domain.SessionUser, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.u, s.set, nil
}

func (s *MemoryStore) Set(u domain.SessionUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.u = u
	s.set = true
	return nil
}

func (s *MemoryStore) Remove() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.u = domain.SessionUser{}
	s.set = false
	return nil
}
