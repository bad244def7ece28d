package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/digicard/admin-auth/internal/domain"
)

// AccountRepo is an in-memory stand-in for the postgres repo, used by
// tests and local development without a datastore.
type AccountRepo struct {
	mu      sync.RWMutex
	byID    map[string]domain.AdminUser
	byEmail map[string]string // email -> id
}

func NewAccountRepo() *AccountRepo {
	return &AccountRepo{
		byID:    make(map[string]domain.AdminUser),
		byEmail: make(map[string]string),
	}
}

// GetByEmail matches exactly and case-sensitively, like the postgres
// repo's unique-column lookup.
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (domain.AdminUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.TrimSpace(email)]
	if !ok {
		return domain.AdminUser{}, domain.ErrAccountNotFound()
	}
	return r.byID[id], nil
}

func (r *AccountRepo) Create(ctx context.Context, u domain.AdminUser) (domain.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u.Email = strings.TrimSpace(u.Email)
	if u.ID == "" {
		return domain.AdminUser{}, domain.ErrInternal(nil)
	}
	if _, exists := r.byEmail[u.Email]; exists {
		return domain.AdminUser{}, domain.ErrInternal(nil)
	}

	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	return u, nil
}
