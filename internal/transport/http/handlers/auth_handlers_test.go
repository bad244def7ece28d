package http_handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/digicard/admin-auth/internal/application/login"
	"github.com/digicard/admin-auth/internal/domain"
	"github.com/digicard/admin-auth/internal/infrastructure/memory"
	"github.com/digicard/admin-auth/internal/infrastructure/security"
	"github.com/digicard/admin-auth/internal/logger"
)

func TestMain(m *testing.M) {
	logger.InitWithWriter(io.Discard)
	os.Exit(m.Run())
}

// -------------------------
// Test wiring (pure unit)
// -------------------------

type failingAccountRepo struct{}

func (failingAccountRepo) GetByEmail(ctx context.Context, email string) (domain.AdminUser, error) {
	return domain.AdminUser{}, domain.ErrDBUnavailable(context.DeadlineExceeded)
}

func (failingAccountRepo) Create(ctx context.Context, u domain.AdminUser) (domain.AdminUser, error) {
	return domain.AdminUser{}, domain.ErrDBUnavailable(context.DeadlineExceeded)
}

func newHandlerForTest(t *testing.T) (*AuthHandler, *memory.AccountRepo, *memory.SessionRevoker) {
	t.Helper()

	accounts := memory.NewAccountRepo()
	revoker := memory.NewSessionRevoker()
	hasher := security.NewBcryptHasher(4) // low cost for test speed
	svc := login.NewService(accounts, hasher, revoker)

	return NewAuthHandler(svc, false), accounts, revoker
}

func seedAdmin(t *testing.T, accounts *memory.AccountRepo) domain.AdminUser {
	t.Helper()

	u, err := memory.SeedAdmin(context.Background(), accounts, security.NewBcryptHasher(4),
		"Admin", "admin@example.com", "secret123")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return u
}

func doLogin(t *testing.T, h *AuthHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/admin-login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	return rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, rec.Body.String())
	}
	return body.Error
}

// -------------------------
// Login
// -------------------------

func TestLogin_MissingFields_400ExactMessage(t *testing.T) {
	h, _, _ := newHandlerForTest(t)

	cases := []string{
		`{}`,
		`{"email":"admin@example.com"}`,
		`{"password":"secret123"}`,
		`{"email":"","password":""}`,
	}

	for _, body := range cases {
		rec := doLogin(t, h, body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
		if msg := decodeErrorBody(t, rec); msg != "Email and password are required" {
			t.Fatalf("body %s: unexpected message %q", body, msg)
		}
	}
}

func TestLogin_UnknownEmail_401GenericMessage(t *testing.T) {
	h, accounts, _ := newHandlerForTest(t)
	seedAdmin(t, accounts)

	rec := doLogin(t, h, `{"email":"nobody@example.com","password":"secret123"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if msg := decodeErrorBody(t, rec); msg != "Invalid email or password" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestLogin_WrongPassword_IndistinguishableFromUnknownEmail(t *testing.T) {
	h, accounts, _ := newHandlerForTest(t)
	seedAdmin(t, accounts)

	wrongPw := doLogin(t, h, `{"email":"admin@example.com","password":"wrong"}`)
	unknown := doLogin(t, h, `{"email":"ghost@example.com","password":"wrong"}`)

	if wrongPw.Code != http.StatusUnauthorized || unknown.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", wrongPw.Code, unknown.Code)
	}
	if wrongPw.Body.String() != unknown.Body.String() {
		t.Fatalf("response bodies must be identical:\n%s\nvs\n%s",
			wrongPw.Body.String(), unknown.Body.String())
	}
}

func TestLogin_MixedCaseEmail_401LikeUnknownEmail(t *testing.T) {
	h, accounts, _ := newHandlerForTest(t)
	seedAdmin(t, accounts)

	// The lookup is exact-match: a case variant of the stored address
	// must not authenticate.
	rec := doLogin(t, h, `{"email":"Admin@Example.COM","password":"secret123"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d (%s)", rec.Code, rec.Body.String())
	}
	if msg := decodeErrorBody(t, rec); msg != "Invalid email or password" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestLogin_CorruptedStoredHash_500GenericMessage(t *testing.T) {
	h, accounts, _ := newHandlerForTest(t)

	_, err := accounts.Create(context.Background(), domain.AdminUser{
		ID: "u1", Name: "Admin", Email: "admin@example.com", PasswordHash: "not-a-bcrypt-hash",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// A stored hash bcrypt cannot read is an internal fault, not a
	// wrong password.
	rec := doLogin(t, h, `{"email":"admin@example.com","password":"secret123"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d (%s)", rec.Code, rec.Body.String())
	}
	if msg := decodeErrorBody(t, rec); msg != "An error occurred during login" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestLogin_Success_200WithSanitizedUser(t *testing.T) {
	h, accounts, _ := newHandlerForTest(t)
	u := seedAdmin(t, accounts)

	rec := doLogin(t, h, `{"email":"admin@example.com","password":"secret123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	var body struct {
		Message string         `json:"message"`
		User    map[string]any `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != "Login successful" {
		t.Fatalf("unexpected message %q", body.Message)
	}
	if body.User["id"] != u.ID || body.User["name"] != "Admin" || body.User["email"] != "admin@example.com" {
		t.Fatalf("unexpected user payload: %v", body.User)
	}
	if _, leaked := body.User["password"]; leaked {
		t.Fatal("user payload must never contain a password field")
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password material leaked: %s", rec.Body.String())
	}
}

func TestLogin_Idempotent_RepeatedSubmission(t *testing.T) {
	h, accounts, _ := newHandlerForTest(t)
	seedAdmin(t, accounts)

	first := doLogin(t, h, `{"email":"admin@example.com","password":"secret123"}`)
	second := doLogin(t, h, `{"email":"admin@example.com","password":"secret123"}`)

	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("expected 200/200, got %d/%d", first.Code, second.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatal("repeated login must yield identical payloads")
	}
}

func TestLogin_MalformedBody_500GenericMessage(t *testing.T) {
	h, _, _ := newHandlerForTest(t)

	rec := doLogin(t, h, `{"email": `)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if msg := decodeErrorBody(t, rec); msg != "An error occurred during login" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestLogin_DatastoreDown_500GenericMessage(t *testing.T) {
	hasher := security.NewBcryptHasher(4)
	svc := login.NewService(failingAccountRepo{}, hasher, memory.NewSessionRevoker())
	h := NewAuthHandler(svc, false)

	rec := doLogin(t, h, `{"email":"admin@example.com","password":"secret123"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if msg := decodeErrorBody(t, rec); msg != "An error occurred during login" {
		t.Fatalf("unexpected message %q", msg)
	}
}

// -------------------------
// Logout
// -------------------------

func TestLogout_NoCookie_204(t *testing.T) {
	h, _, revoker := newHandlerForTest(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin-logout", nil)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if revoker.Revoked("") {
		t.Fatal("no token should have been revoked")
	}
}

func TestLogout_WithCookie_RevokesAndClears(t *testing.T) {
	h, _, revoker := newHandlerForTest(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin-logout", nil)
	req.AddCookie(&http.Cookie{Name: security.SessionCookieName, Value: "tok-1"})
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if !revoker.Revoked("tok-1") {
		t.Fatal("expected session token to be revoked")
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 {
		t.Fatalf("expected expired session cookie, got %+v", cookies)
	}
}
