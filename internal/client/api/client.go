// Package api is the thin HTTP client the admin UI talks through. It
// speaks the wire contract of the server's /api endpoints and converts
// error bodies back into domain errors so controllers never touch raw
// status codes.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/digicard/admin-auth/internal/domain"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient swaps the underlying transport, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string             `json:"message"`
	User    domain.SessionUser `json:"user"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Login verifies credentials against the server. On non-2xx responses
// the server's error message is carried back inside a domain error so
// the caller can render it verbatim.
func (c *Client) Login(ctx context.Context, email, password string) (domain.SessionUser, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return domain.SessionUser{}, fmt.Errorf("encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/admin-login", bytes.NewReader(body))
	if err != nil {
		return domain.SessionUser{}, fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.SessionUser{}, fmt.Errorf("login request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.SessionUser{}, c.asDomainError(resp)
	}

	var out loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.SessionUser{}, fmt.Errorf("decode login response: %w", err)
	}
	return out.User, nil
}

// SignOut revokes the server-side session. The server treats a missing
// session as already signed out, so a 2xx always means done.
func (c *Client) SignOut(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/admin-logout", nil)
	if err != nil {
		return fmt.Errorf("build logout request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.asDomainError(resp)
	}
	return nil
}

// asDomainError reads an {"error": ...} body and rebuilds the closest
// domain error for the status. Unreadable bodies fall back to a generic
// message per status class.
func (c *Client) asDomainError(resp *http.Response) error {
	var eb errorBody
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	_ = json.Unmarshal(b, &eb)

	kind := domain.KindInternal
	code := "server_error"
	switch resp.StatusCode {
	case http.StatusBadRequest:
		kind, code = domain.KindValidation, "invalid_request"
	case http.StatusUnauthorized:
		kind, code = domain.KindAuth, "unauthorized"
	case http.StatusNotFound:
		kind, code = domain.KindNotFound, "not_found"
	}

	msg := eb.Error
	if msg == "" {
		msg = fmt.Sprintf("request failed with status %d", resp.StatusCode)
	}
	return domain.New(kind, code, msg)
}
