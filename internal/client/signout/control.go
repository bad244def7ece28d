// Package signout drives the dashboard's sign-out action: revoke the
// server session, drop the local slot, refresh session state, redirect.
package signout

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/digicard/admin-auth/internal/client/nav"
	"github.com/digicard/admin-auth/internal/client/session"
)

// RemoteSession is the server-side half of sign-out.
type RemoteSession interface {
	SignOut(ctx context.Context) error
}

// Control runs the sign-out sequence. Run returns nothing: failures are
// logged and the sequence stops where it stands.
type Control struct {
	auth    RemoteSession
	store   session.Store
	recheck func(ctx context.Context) error
	nav     nav.Navigator
	log     zerolog.Logger

	// ClearLocalOnError also removes the local slot when the remote
	// sign-out fails. Off by default: a reachable server that refuses
	// the sign-out keeps the session authoritative.
	ClearLocalOnError bool
}

// New wires a Control. recheck may be nil when no session watcher needs
// a nudge after the local slot changes.
func New(auth RemoteSession, store session.Store, recheck func(ctx context.Context) error, navigator nav.Navigator, log zerolog.Logger) *Control {
	return &Control{
		auth:    auth,
		store:   store,
		recheck: recheck,
		nav:     navigator,
		log:     log,
	}
}

// Run executes the sequence. The redirect to the sign-in route happens
// at most once, and only after every prior step succeeded.
func (c *Control) Run(ctx context.Context) {
	if err := c.auth.SignOut(ctx); err != nil {
		c.log.Error().Err(err).Msg("remote sign-out failed")
		if !c.ClearLocalOnError {
			return
		}
		// Fall through: caller opted into clearing local state even
		// when the server could not confirm the sign-out.
	}

	if err := c.store.Remove(); err != nil {
		c.log.Error().Err(err).Msg("remove local session")
		return
	}

	if c.recheck != nil {
		if err := c.recheck(ctx); err != nil {
			c.log.Error().Err(err).Msg("session recheck")
			return
		}
	}

	c.nav.Replace(nav.SignInPath)
}
