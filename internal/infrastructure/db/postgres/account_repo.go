package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/digicard/admin-auth/internal/domain"
)

type AccountRepo struct {
	db *sql.DB
}

func NewAccountRepo(db *sql.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

func toDomainUser(ar accountRow) domain.AdminUser {
	return domain.AdminUser{
		ID:           ar.ID,
		Name:         ar.Name,
		Email:        ar.Email,
		PasswordHash: ar.PasswordHash,
	}
}

// GetByEmail is the single read the login flow performs. Matching is
// exact and case-sensitive; only surrounding whitespace is forgiven.
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (domain.AdminUser, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.AdminUser{}, domain.ErrAccountNotFound()
	}

	const q = `
SELECT id, name, email, password_hash, created_at
FROM admin_users
WHERE email = $1
LIMIT 1;
`
	var ar accountRow
	err := r.db.QueryRowContext(ctx, q, email).Scan(
		&ar.ID,
		&ar.Name,
		&ar.Email,
		&ar.PasswordHash,
		&ar.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.AdminUser{}, domain.ErrAccountNotFound()
		}
		return domain.AdminUser{}, domain.ErrDBUnavailable(err)
	}
	return toDomainUser(ar), nil
}

// Create exists for seeding and fixtures; the login endpoint never writes.
func (r *AccountRepo) Create(ctx context.Context, u domain.AdminUser) (domain.AdminUser, error) {
	u.Email = strings.TrimSpace(u.Email)
	if u.ID == "" || u.Email == "" || u.PasswordHash == "" {
		return domain.AdminUser{}, domain.ErrInternal(errors.New("incomplete account record"))
	}

	const q = `
INSERT INTO admin_users (id, name, email, password_hash)
VALUES ($1,$2,$3,$4)
RETURNING id, name, email, password_hash, created_at;
`
	var ar accountRow
	err := r.db.QueryRowContext(ctx, q, u.ID, u.Name, u.Email, u.PasswordHash).Scan(
		&ar.ID,
		&ar.Name,
		&ar.Email,
		&ar.PasswordHash,
		&ar.CreatedAt,
	)
	if err != nil {
		return domain.AdminUser{}, domain.ErrDBUnavailable(err)
	}
	return toDomainUser(ar), nil
}
