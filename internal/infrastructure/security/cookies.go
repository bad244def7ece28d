package security

import "net/http"

// SessionCookieName carries the opaque dashboard session token, when an
// upstream collaborator issued one. Login itself never sets it.
const SessionCookieName = "admin_session"

func ClearSessionToken(w http.ResponseWriter, secure bool) {
	name := SessionCookieName
	if secure {
		name = "__Host-" + SessionCookieName
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func ReadSessionToken(r *http.Request) (string, error) {
	// Prefer the secure-prefixed cookie.
	if c, err := r.Cookie("__Host-" + SessionCookieName); err == nil {
		return c.Value, nil
	}
	// Fallback for local non-HTTPS development.
	c, err := r.Cookie(SessionCookieName)
	if err != nil {
		return "", err
	}
	return c.Value, nil
}
