package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preaus007/life-care/pkg/auth"
)

// fakeServer mimics the auth API: login sets a cookie, check-auth requires it.
func fakeServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
	user := map[string]any{"id": "abc", "name": "Alice", "email": "a@x.com", "role": "Patient", "isVerified": true}

	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "secret1" {
			writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid credentials"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "session-abc", Path: "/", HttpOnly: true})
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "user": user})
	})
	mux.HandleFunc("/api/v1/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "", Path: "/", MaxAge: -1})
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Logged out successfully"})
	})
	mux.HandleFunc("/api/v1/auth/check-auth", func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("token")
		if err != nil || c.Value != "session-abc" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "not authenticated"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "user": user})
	})
	mux.HandleFunc("/api/v1/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]any{"success": true, "user": user})
	})
	mux.HandleFunc("/api/v1/auth/forgot-password", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "User not found"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSessionLifecycle(t *testing.T) {
	srv := fakeServer(t)
	session := NewSession()
	c, err := New(srv.URL, session)
	require.NoError(t, err)
	ctx := context.Background()

	assert.Equal(t, StateUninitialized, session.State())

	// No cookie yet: check resolves to anonymous.
	_, err = c.CheckAuth(ctx)
	assert.Error(t, err)
	assert.Equal(t, StateAnonymous, session.State())

	// Failed login stays anonymous with a display message.
	_, err = c.Login(ctx, "a@x.com", "wrong")
	assert.EqualError(t, err, "Invalid credentials")
	assert.Equal(t, StateAnonymous, session.State())
	assert.Equal(t, "Invalid credentials", session.Err())

	// Successful login authenticates and stores the user.
	u, err := c.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)
	assert.Equal(t, StateAuthenticated, session.State())
	assert.Empty(t, session.Err())

	// The jar carries the cookie into subsequent calls.
	_, err = c.CheckAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, session.State())

	require.NoError(t, c.Logout(ctx))
	assert.Equal(t, StateAnonymous, session.State())
	assert.Nil(t, session.User())
}

func TestSignupDoesNotAuthenticate(t *testing.T) {
	srv := fakeServer(t)
	session := NewSession()
	c, err := New(srv.URL, session)
	require.NoError(t, err)

	u, err := c.Signup(context.Background(), "Alice", "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)
	assert.NotEqual(t, StateAuthenticated, session.State())
}

func TestForgotPasswordSurfacesMessage(t *testing.T) {
	srv := fakeServer(t)
	session := NewSession()
	c, err := New(srv.URL, session)
	require.NoError(t, err)

	err = c.ForgotPassword(context.Background(), "nobody@x.com")
	assert.EqualError(t, err, "User not found")
	assert.Equal(t, "User not found", session.Err())
}

func TestServerUnavailable(t *testing.T) {
	session := NewSession()
	c, err := New("http://127.0.0.1:1", session)
	require.NoError(t, err)

	_, err = c.Login(context.Background(), "a@x.com", "secret1")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGuards(t *testing.T) {
	verified := auth.PublicUser{ID: "abc", IsVerified: true}
	unverified := auth.PublicUser{ID: "abc"}

	s := NewSession()
	assert.Equal(t, Wait, RequireAuthenticated(s))
	assert.Equal(t, Wait, RedirectIfAuthenticated(s))

	s.setChecking()
	assert.Equal(t, Wait, RequireAuthenticated(s))

	s.setAnonymous("")
	assert.Equal(t, RedirectToLogin, RequireAuthenticated(s))
	assert.Equal(t, Allow, RedirectIfAuthenticated(s))

	s.setAuthenticated(unverified)
	assert.Equal(t, RedirectToVerify, RequireAuthenticated(s))
	assert.Equal(t, Allow, RedirectIfAuthenticated(s))

	s.setAuthenticated(verified)
	assert.Equal(t, Allow, RequireAuthenticated(s))
	assert.Equal(t, RedirectToHome, RedirectIfAuthenticated(s))
}
