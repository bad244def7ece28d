// Package cli is the terminal shell around the admin client: it maps
// subcommands onto the sign-in and sign-out controllers and renders
// their state as plain text.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/digicard/admin-auth/internal/client/api"
	"github.com/digicard/admin-auth/internal/client/session"
	"github.com/digicard/admin-auth/internal/client/signin"
	"github.com/digicard/admin-auth/internal/client/signout"
)

// Config carries what the shell needs to reach the server and keep
// local state.
type Config struct {
	ServerURL string
	DataDir   string
}

// App dispatches one subcommand per invocation.
type App struct {
	store session.Store
	api   *api.Client
	log   zerolog.Logger

	in  io.Reader
	out io.Writer
}

func NewApp(cfg Config, log zerolog.Logger, in io.Reader, out io.Writer) (*App, error) {
	store, err := session.NewFileStore(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	return &App{
		store: store,
		api:   api.New(cfg.ServerURL),
		log:   log,
		in:    in,
		out:   out,
	}, nil
}

// Run executes a single subcommand and returns a process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		a.usage()
		return 2
	}

	switch args[0] {
	case "sign-in":
		return a.signIn(ctx)
	case "sign-out":
		return a.signOut(ctx)
	case "whoami":
		return a.whoami()
	default:
		fmt.Fprintf(a.out, "unknown command %q\n", args[0])
		a.usage()
		return 2
	}
}

func (a *App) usage() {
	fmt.Fprintln(a.out, "usage: admin <sign-in|sign-out|whoami>")
}

// printNav renders route changes, the terminal's stand-in for a router.
type printNav struct {
	out io.Writer
}

func (p printNav) Push(path string)    { fmt.Fprintf(p.out, "-> %s\n", path) }
func (p printNav) Replace(path string) { fmt.Fprintf(p.out, "-> %s\n", path) }

func (a *App) signIn(ctx context.Context) int {
	ctrl := signin.NewController(a.api, a.store, printNav{a.out}, a.log)

	r := bufio.NewReader(a.in)

	fmt.Fprint(a.out, "email: ")
	email, err := r.ReadString('\n')
	if err != nil && email == "" {
		fmt.Fprintln(a.out, "aborted")
		return 1
	}
	ctrl.Email = strings.TrimSpace(email)

	fmt.Fprint(a.out, "password: ")
	password, err := r.ReadString('\n')
	if err != nil && password == "" {
		fmt.Fprintln(a.out, "aborted")
		return 1
	}
	ctrl.Password = strings.TrimRight(password, "\r\n")

	ctrl.Submit(ctx)

	if fe := ctrl.FieldErrors(); fe.Any() {
		if fe.Email != "" {
			fmt.Fprintln(a.out, fe.Email)
		}
		if fe.Password != "" {
			fmt.Fprintln(a.out, fe.Password)
		}
		return 1
	}
	if msg := ctrl.ErrorMessage(); msg != "" {
		fmt.Fprintln(a.out, msg)
		return 1
	}

	fmt.Fprintln(a.out, "signed in")
	return 0
}

func (a *App) signOut(ctx context.Context) int {
	_, hadSession, _ := a.store.Get()

	ctrl := signout.New(a.api, a.store, nil, printNav{a.out}, a.log)
	ctrl.Run(ctx)

	_, still, _ := a.store.Get()
	if still {
		fmt.Fprintln(a.out, "sign-out did not complete")
		return 1
	}
	if !hadSession {
		fmt.Fprintln(a.out, "no local session")
	}
	fmt.Fprintln(a.out, "signed out")
	return 0
}

func (a *App) whoami() int {
	u, ok, err := a.store.Get()
	if err != nil {
		fmt.Fprintf(a.out, "read session: %v\n", err)
		return 1
	}
	if !ok {
		fmt.Fprintln(a.out, "not signed in")
		return 1
	}
	fmt.Fprintf(a.out, "%s <%s>\n", u.Name, u.Email)
	return 0
}
