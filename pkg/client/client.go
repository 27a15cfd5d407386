// Package client is the application-side mirror of the authentication API:
// a thin REST client that keeps the session cookie in a jar and maintains an
// explicit Session state object for route guards.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/preaus007/life-care/pkg/auth"
)

var ErrUnavailable = errors.New("server unavailable")

// Client calls the auth API and updates the injected Session.
type Client struct {
	baseURL string
	http    *http.Client
	session *Session
}

// New builds a Client against baseURL (e.g. "http://localhost:5001").
// The cookie jar carries the HTTP-only session cookie across calls.
func New(baseURL string, session *Session) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: baseURL + "/api/v1/auth",
		http: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
		},
		session: session,
	}, nil
}

// Session exposes the state object for guards and UI code.
func (c *Client) Session() *Session { return c.session }

type apiResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	User    *auth.PublicUser `json:"user"`
}

func (c *Client) Signup(ctx context.Context, name, email, password string) (*auth.PublicUser, error) {
	resp, err := c.post(ctx, "/signup", map[string]string{
		"name": name, "email": email, "password": password,
	})
	if err != nil {
		c.session.setError(err.Error())
		return nil, err
	}
	// Signed up but not yet verified: still anonymous.
	return resp.User, nil
}

func (c *Client) VerifyEmail(ctx context.Context, code string) (*auth.PublicUser, error) {
	resp, err := c.post(ctx, "/verify-email", map[string]string{"code": code})
	if err != nil {
		c.session.setError(err.Error())
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*auth.PublicUser, error) {
	resp, err := c.post(ctx, "/login", map[string]string{
		"email": email, "password": password,
	})
	if err != nil {
		c.session.setAnonymous(err.Error())
		return nil, err
	}
	c.session.setAuthenticated(*resp.User)
	return resp.User, nil
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := c.post(ctx, "/logout", nil)
	// The cookie is gone either way.
	c.session.setAnonymous("")
	return err
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	if _, err := c.post(ctx, "/forgot-password", map[string]string{"email": email}); err != nil {
		c.session.setError(err.Error())
		return err
	}
	return nil
}

func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	if _, err := c.post(ctx, "/reset-password/"+token, map[string]string{"password": password}); err != nil {
		c.session.setError(err.Error())
		return err
	}
	return nil
}

// CheckAuth resolves Uninitialized into Authenticated or Anonymous using
// the session cookie, if any.
func (c *Client) CheckAuth(ctx context.Context) (*auth.PublicUser, error) {
	c.session.setChecking()
	resp, err := c.do(ctx, http.MethodGet, "/check-auth", nil)
	if err != nil {
		c.session.setAnonymous("")
		return nil, err
	}
	c.session.setAuthenticated(*resp.User)
	return resp.User, nil
}

func (c *Client) post(ctx context.Context, path string, body any) (*apiResponse, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*apiResponse, error) {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	httpResp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer httpResp.Body.Close()

	var resp apiResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("%w: bad response", ErrUnavailable)
	}
	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = http.StatusText(httpResp.StatusCode)
		}
		return nil, errors.New(msg)
	}
	return &resp, nil
}
