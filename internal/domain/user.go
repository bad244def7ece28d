package domain

// AdminUser is the durable account record owned by the dashboard datastore.
// This service only ever reads it; the password hash never leaves the
// server side.
type AdminUser struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
}

// SessionUser is the sanitized projection handed to the client after a
// successful login. It is what gets serialized into the client-local
// session slot, so the JSON shape is part of the wire contract.
// It must never carry the password hash.
type SessionUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session returns the client-facing projection of an account record.
func (u AdminUser) Session() SessionUser {
	return SessionUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
