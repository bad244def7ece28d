package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/digicard/admin-auth/internal/domain"
)

type seederHasher interface {
	Hash(password string) (string, error)
}

// SeedAdmin inserts one known account and returns it. Handy for handler
// tests and the in-memory dev mode.
func SeedAdmin(ctx context.Context, repo *AccountRepo, hasher seederHasher, name, email, password string) (domain.AdminUser, error) {
	hash, err := hasher.Hash(password)
	if err != nil {
		return domain.AdminUser{}, err
	}

	return repo.Create(ctx, domain.AdminUser{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
}
