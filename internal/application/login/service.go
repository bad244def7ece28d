package login

// Service implements the credential verification and session termination
// flows behind the admin endpoints.
type Service struct {
	accounts AccountRepo
	hasher   PasswordHasher
	sessions SessionRevoker
}

func NewService(accounts AccountRepo, hasher PasswordHasher, sessions SessionRevoker) *Service {
	return &Service{
		accounts: accounts,
		hasher:   hasher,
		sessions: sessions,
	}
}
