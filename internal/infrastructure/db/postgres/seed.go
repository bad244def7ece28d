package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/digicard/admin-auth/internal/domain"
	"github.com/digicard/admin-auth/internal/logger"
)

type SeederHasher interface {
	Hash(password string) (string, error)
}

type SeederRepo interface {
	Create(ctx context.Context, u domain.AdminUser) (domain.AdminUser, error)
}

// SeedAccounts inserts a known dev admin. Restart safe: duplicates are
// ignored.
func SeedAccounts(ctx context.Context, repo SeederRepo, hasher SeederHasher) {
	type seedAccount struct {
		Name  string
		Email string
		Pass  string
	}

	seeds := []seedAccount{
		{Name: "Admin", Email: "admin@example.com", Pass: "secret123"},
	}

	for _, s := range seeds {
		hash, err := hasher.Hash(s.Pass)
		if err != nil {
			logger.Logger.Warn().Err(err).Str("email", s.Email).Msg("seed hash failed")
			continue
		}

		_, err = repo.Create(ctx, domain.AdminUser{
			ID:           uuid.NewString(),
			Name:         s.Name,
			Email:        s.Email,
			PasswordHash: hash,
		})
		if err != nil {
			// ignore duplicates (restart safe)
			continue
		}
	}

	logger.Logger.Info().Msg("admin accounts seeded")
}
