package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, serverURL string, input string) (*App, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	app, err := NewApp(
		Config{ServerURL: serverURL, DataDir: t.TempDir()},
		zerolog.Nop(),
		strings.NewReader(input),
		out,
	)
	require.NoError(t, err)
	return app, out
}

func authServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/admin-login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Login successful","user":{"id":"u1","name":"Admin","email":"admin@example.com"}}`))
	})
	mux.HandleFunc("/api/admin-logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRun_NoArgs_Usage(t *testing.T) {
	t.Parallel()

	app, out := newTestApp(t, "http://localhost:0", "")
	code := app.Run(context.Background(), nil)

	assert.Equal(t, 2, code)
	assert.Contains(t, out.String(), "usage:")
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Parallel()

	app, out := newTestApp(t, "http://localhost:0", "")
	code := app.Run(context.Background(), []string{"frobnicate"})

	assert.Equal(t, 2, code)
	assert.Contains(t, out.String(), "unknown command")
}

func TestSignIn_ThenWhoami_ThenSignOut(t *testing.T) {
	t.Parallel()

	srv := authServer(t)
	app, out := newTestApp(t, srv.URL, "admin@example.com\nsecret123\n")

	code := app.Run(context.Background(), []string{"sign-in"})
	require.Equal(t, 0, code, out.String())
	assert.Contains(t, out.String(), "signed in")
	assert.Contains(t, out.String(), "/dashboard")

	out.Reset()
	code = app.Run(context.Background(), []string{"whoami"})
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Admin <admin@example.com>")

	out.Reset()
	code = app.Run(context.Background(), []string{"sign-out"})
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "signed out")

	out.Reset()
	code = app.Run(context.Background(), []string{"whoami"})
	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "not signed in")
}

func TestSignIn_InvalidEmail_NoRequest(t *testing.T) {
	t.Parallel()

	app, out := newTestApp(t, "http://localhost:0", "not-an-email\npw\n")
	code := app.Run(context.Background(), []string{"sign-in"})

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Invalid email")
}

func TestSignIn_WrongPassword_ShowsServerMessage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid email or password"}`))
	}))
	defer srv.Close()

	app, out := newTestApp(t, srv.URL, "admin@example.com\nwrong\n")
	code := app.Run(context.Background(), []string{"sign-in"})

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Invalid email or password")
}

func TestSignOut_RemoteFailure_KeepsLocalSession(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/admin-login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Login successful","user":{"id":"u1","name":"Admin","email":"admin@example.com"}}`))
	})
	mux.HandleFunc("/api/admin-logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"internal error"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	app, out := newTestApp(t, srv.URL, "admin@example.com\nsecret123\n")
	require.Equal(t, 0, app.Run(context.Background(), []string{"sign-in"}))

	out.Reset()
	code := app.Run(context.Background(), []string{"sign-out"})
	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "sign-out did not complete")

	out.Reset()
	assert.Equal(t, 0, app.Run(context.Background(), []string{"whoami"}),
		"local session must survive a failed remote sign-out")
}
