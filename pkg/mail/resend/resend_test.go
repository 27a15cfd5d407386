package resend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendVerificationCode(t *testing.T) {
	var got sendRequest
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m, err := NewMailer("test-key", "LifeCare <noreply@life.care>")
	require.NoError(t, err)
	m.baseURL = srv.URL

	err = m.SendVerificationCode(context.Background(), "a@x.com", "Alice", "123456")
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, []string{"a@x.com"}, got.To)
	assert.Equal(t, "Email Verification", got.Subject)
	assert.Contains(t, got.HTML, "123456")
	assert.Contains(t, got.HTML, "Alice")
}

func TestSendPasswordReset(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m, err := NewMailer("test-key", "LifeCare <noreply@life.care>")
	require.NoError(t, err)
	m.baseURL = srv.URL

	link := "http://localhost:5173/reset-password/tok-123"
	require.NoError(t, m.SendPasswordReset(context.Background(), "a@x.com", "Alice", link))
	assert.Equal(t, "Password Reset", got.Subject)
	assert.Contains(t, got.HTML, link)
}

func TestSendAPIFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer srv.Close()

	m, err := NewMailer("test-key", "bad-from")
	require.NoError(t, err)
	m.baseURL = srv.URL

	err = m.SendVerificationCode(context.Background(), "a@x.com", "Alice", "123456")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid from address")
}

func TestNewMailerRequiresKey(t *testing.T) {
	_, err := NewMailer("", "LifeCare <noreply@life.care>")
	assert.Error(t, err)
}
