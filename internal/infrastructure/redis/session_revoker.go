package redis

import (
	"context"
	"strings"

	"github.com/digicard/admin-auth/internal/domain"
)

// SessionRevoker implements login.SessionRevoker against redis.
// Dashboard sessions live under sess:<token>; the upstream collaborator
// that issues them owns their creation, this service only revokes.
type SessionRevoker struct {
	c *Client

	prefix string
}

func NewSessionRevoker(c *Client) *SessionRevoker {
	return &SessionRevoker{
		c:      c,
		prefix: "sess:",
	}
}

func (s *SessionRevoker) Revoke(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil // idempotent
	}
	if s.c == nil || s.c.rdb == nil {
		return domain.ErrRedisUnavailable(nil)
	}

	if err := s.c.rdb.Del(ctx, s.prefix+token).Err(); err != nil {
		return domain.ErrRedisUnavailable(err)
	}
	return nil
}
