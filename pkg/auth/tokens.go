package auth

import "context"

// SessionIssuer abstracts session credential creation (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type SessionIssuer interface {
	Issue(ctx context.Context, user User) (string, error)
}

// Notifier delivers one-time credentials to the user out-of-band.
// Raw codes/tokens pass through here exactly once and are never persisted.
type Notifier interface {
	SendVerificationCode(ctx context.Context, email, name, code string) error
	SendPasswordReset(ctx context.Context, email, name, link string) error
}
