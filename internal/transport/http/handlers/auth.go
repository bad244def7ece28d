package http_handlers

import (
	"net/http"
	"strings"

	"github.com/digicard/admin-auth/internal/application/login"
	"github.com/digicard/admin-auth/internal/domain"
	"github.com/digicard/admin-auth/internal/infrastructure/security"
	"github.com/digicard/admin-auth/internal/logger"
	"github.com/digicard/admin-auth/internal/transport/http/dto"
	"github.com/digicard/admin-auth/internal/transport/http/response"
)

type AuthHandler struct {
	svc           *login.Service
	secureCookies bool
}

func NewAuthHandler(svc *login.Service, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		svc:           svc,
		secureCookies: secureCookies,
	}
}

// Login handles POST /api/admin-login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		// A body we cannot parse is an unexpected failure per the
		// endpoint contract, not a 400.
		l := logger.WithCtx(r.Context())
		l.Error().Err(err).Msg("login_body_malformed")
		response.WriteError(w, r, domain.ErrLoginFailed(err))
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	u, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if domain.Is(err, "login_failed") {
			l := logger.WithCtx(r.Context())
			l.Error().Err(err).Msg("login_unexpected_failure")
		}
		response.WriteError(w, r, err)
		return
	}

	l := logger.WithCtx(r.Context())
	l.Info().
		Str("user_id", u.ID).
		Msg("admin_logged_in")

	response.OK(w, dto.NewLoginResponse(u))
}

// Logout handles POST /api/admin-logout. Always succeeds for the caller:
// revoking a token nobody holds is a no-op, matching the login contract
// that never issued one in the first place.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	tok, err := security.ReadSessionToken(r)
	if err == nil && tok != "" {
		if err := h.svc.SignOut(r.Context(), tok); err != nil {
			l := logger.WithCtx(r.Context())
			l.Warn().Err(err).Msg("session_revoke_failed")
		}
	}

	security.ClearSessionToken(w, h.secureCookies)
	response.NoContent(w)
}
