package login

import "context"

// SignOut revokes the presented dashboard session token remotely.
// A missing token is a no-op: the client may never have held one.
func (s *Service) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Revoke(ctx, token)
}
