// Package client implements a small JSON/HTTP client for the user service
// API, used by the terminal client.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/groovestream/users/internal/common"
)

// User is the client-side view of an account; the server never includes a
// password field.
type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Role     string   `json:"role"`
	Playlist []string `json:"playlist"`
}

// AuthResult is the response to a successful register or login call.
type AuthResult struct {
	Msg   string `json:"msg"`
	User  User   `json:"user"`
	Token string `json:"token"`
}

type meResult struct {
	User User `json:"user"`
}

type msgResult struct {
	Msg string `json:"msg"`
}

// APIError is a structured rejection from the service (4xx/5xx with a msg
// body).
type APIError struct {
	StatusCode int
	Msg        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server answered %d: %s", e.StatusCode, e.Msg)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Register creates an account and returns the issued session token.
func (c *Client) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	out := &AuthResult{}
	if err := c.post(ctx, "/api/v1/user/register", body, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Login verifies the credentials and returns a fresh session token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	out := &AuthResult{}
	if err := c.post(ctx, "/api/v1/user/login", body, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Me resolves a session token to the account it was issued for.
func (c *Client) Me(ctx context.Context, token string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/user/me", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(common.TokenHeaderName, token)

	out := &meResult{}
	if err := c.do(req, out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		m := &msgResult{}
		if err := json.NewDecoder(resp.Body).Decode(m); err == nil {
			apiErr.Msg = m.Msg
		}
		return apiErr
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
