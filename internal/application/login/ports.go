package login

import (
	"context"

	"github.com/digicard/admin-auth/internal/domain"
)

/*
AccountRepo
-----------
Persistence port for admin accounts. Login only ever reads, but Create is
here so seeds and test fixtures go through the same door.
*/
type AccountRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.AdminUser, error)
	Create(ctx context.Context, u domain.AdminUser) (domain.AdminUser, error)
}

/*
PasswordHasher
--------------
Abstracts the irreversible comparison (bcrypt today). Compare returns nil
on a match.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

/*
SessionRevoker
--------------
Remote-session-invalidate capability consumed by sign-out. Login never
touches it; the endpoint issues no token.
*/
type SessionRevoker interface {
	Revoke(ctx context.Context, token string) error
}
