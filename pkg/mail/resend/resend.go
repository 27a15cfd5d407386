// Package resend sends transactional email through the Resend HTTP API.
package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.resend.com"

// Mailer implements auth.Notifier on top of the Resend REST API.
type Mailer struct {
	apiKey  string
	from    string
	client  *http.Client
	baseURL string
}

func NewMailer(apiKey, from string) (*Mailer, error) {
	if apiKey == "" {
		return nil, errors.New("resend: api key is required")
	}
	return &Mailer{
		apiKey: apiKey,
		from:   from,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		baseURL: defaultBaseURL,
	}, nil
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (m *Mailer) SendVerificationCode(ctx context.Context, email, name, code string) error {
	html := fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>Your verification code is:</p>
		<h1>%s</h1>
		<p>The code expires in 24 hours.</p>
	`, name, code)
	return m.send(ctx, email, "Email Verification", html)
}

func (m *Mailer) SendPasswordReset(ctx context.Context, email, name, link string) error {
	html := fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>Click the link below to reset your password:</p>
		<p><a href="%s">Reset Password</a></p>
		<p>The link expires in 1 hour.</p>
	`, name, link)
	return m.send(ctx, email, "Password Reset", html)
}

func (m *Mailer) send(ctx context.Context, to, subject, html string) error {
	body := sendRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	}
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("resend: send failed (%d): %s", resp.StatusCode, detail)
	}
	return nil
}
