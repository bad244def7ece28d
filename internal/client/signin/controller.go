// Package signin drives the admin sign-in form: field state, client
// validation, submission, and the post-login handoff to the dashboard.
package signin

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/digicard/admin-auth/internal/client/nav"
	"github.com/digicard/admin-auth/internal/client/session"
	"github.com/digicard/admin-auth/internal/domain"
)

// Client-side validation messages, shown next to their fields.
const (
	msgEmailRequired    = "Email is required"
	msgEmailInvalid     = "Invalid email"
	msgPasswordRequired = "Password is required"

	msgLoginFallback   = "Login failed"
	msgUnexpectedError = "An unexpected error occurred during login"
)

// Authenticator is the remote credential check the form submits to.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (domain.SessionUser, error)
}

// FieldErrors holds per-field validation messages. Empty string means
// the field is fine.
type FieldErrors struct {
	Email    string
	Password string
}

func (f FieldErrors) Any() bool { return f.Email != "" || f.Password != "" }

// Controller is the form's state machine. It is not safe for concurrent
// use; a form has a single owner.
type Controller struct {
	auth  Authenticator
	store session.Store
	nav   nav.Navigator
	log   zerolog.Logger
	valid *validator.Validate

	Email        string
	Password     string
	ShowPassword bool

	pending bool
	errMsg  string
	fields  FieldErrors
}

func NewController(auth Authenticator, store session.Store, navigator nav.Navigator, log zerolog.Logger) *Controller {
	return &Controller{
		auth:  auth,
		store: store,
		nav:   navigator,
		log:   log,
		valid: validator.New(),
	}
}

// Pending reports whether a submission is in flight. The form disables
// its submit control while this is true.
func (c *Controller) Pending() bool { return c.pending }

// ErrorMessage is the form-level error banner, empty when clear.
func (c *Controller) ErrorMessage() string { return c.errMsg }

// FieldErrors returns the current per-field messages.
func (c *Controller) FieldErrors() FieldErrors { return c.fields }

// ToggleShowPassword flips between masked and plain password display.
func (c *Controller) ToggleShowPassword() { c.ShowPassword = !c.ShowPassword }

// Validate runs client-side checks and records per-field messages.
// It reports whether the form may be submitted.
func (c *Controller) Validate() bool {
	c.fields = FieldErrors{}

	if c.Email == "" {
		c.fields.Email = msgEmailRequired
	} else if err := c.valid.Var(c.Email, "email"); err != nil {
		c.fields.Email = msgEmailInvalid
	}

	if c.Password == "" {
		c.fields.Password = msgPasswordRequired
	}

	return !c.fields.Any()
}

// Submit runs the full flow: validate, call the server, persist the
// session user and navigate. Exactly one submission runs at a time;
// calls while pending are dropped.
func (c *Controller) Submit(ctx context.Context) {
	if c.pending {
		return
	}
	if !c.Validate() {
		return
	}

	c.pending = true
	c.errMsg = ""
	defer func() { c.pending = false }()

	u, err := c.auth.Login(ctx, c.Email, c.Password)
	if err != nil {
		c.errMsg = loginErrorMessage(err)
		c.log.Warn().Err(err).Msg("sign-in failed")
		return
	}

	if err := c.store.Set(u); err != nil {
		c.errMsg = msgUnexpectedError
		c.log.Error().Err(err).Msg("persist session user")
		return
	}

	c.log.Info().Str("user_id", u.ID).Msg("signed in")
	c.nav.Push(nav.DashboardPath)
}

// loginErrorMessage picks what the banner shows: the server's own
// message when we have one, a generic line otherwise. Transport faults
// never surface raw error text.
func loginErrorMessage(err error) string {
	var de *domain.Error
	if errors.As(err, &de) {
		if de.Message != "" {
			return de.Message
		}
		return msgLoginFallback
	}
	return msgUnexpectedError
}
