package login

import (
	"context"
	"strings"

	"github.com/digicard/admin-auth/internal/domain"
)

// Login verifies a credential pair against the account store.
// IMPORTANT: must not leak whether the email exists (avoid user
// enumeration): unknown email and wrong password return the same error.
// Infrastructure failures are NOT hidden behind it; they surface as the
// generic login failure so the transport maps them to 500, never 401.
func (s *Service) Login(ctx context.Context, email, password string) (domain.AdminUser, error) {
	email = strings.TrimSpace(email)

	if email == "" || password == "" {
		return domain.AdminUser{}, domain.ErrCredentialsRequired()
	}

	u, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if domain.Is(err, "account_not_found") {
			// Hide not-found behind invalid credentials
			return domain.AdminUser{}, domain.ErrInvalidCredentials()
		}
		return domain.AdminUser{}, domain.ErrLoginFailed(err)
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		if domain.Is(err, "hash_failed") {
			// Unusable stored hash is an internal fault, not a wrong
			// password.
			return domain.AdminUser{}, domain.ErrLoginFailed(err)
		}
		return domain.AdminUser{}, domain.ErrInvalidCredentials()
	}

	return u, nil
}
