// Package session holds the client-local "currently signed in" marker:
// a single slot keyed by StorageKey containing the sanitized user
// projection, and nothing else. No expiry is enforced here.
package session

import "github.com/digicard/admin-auth/internal/domain"

// StorageKey is the fixed name of the client-local session slot.
const StorageKey = "user-data"

// Store abstracts the client-local key-value slot so tests can swap an
// in-memory stand-in for the real file-backed one.
type Store interface {
	// Get returns the stored session user. ok is false when the slot is
	// empty; that is not an error.
	Get() (u domain.SessionUser, ok bool, err error)
	Set(u domain.SessionUser) error
	Remove() error
}
