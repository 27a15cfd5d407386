// Package mail provides auth.Notifier implementations for delivering
// one-time codes and reset links.
package mail

import (
	"context"
	"log/slog"
)

// LogNotifier writes outgoing notifications to the structured log instead
// of sending real email. Intended for local development and tests.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) SendVerificationCode(ctx context.Context, email, name, code string) error {
	n.logger.InfoContext(ctx, "verification code issued",
		"email", email,
		"name", name,
		"code", code,
	)
	return nil
}

func (n *LogNotifier) SendPasswordReset(ctx context.Context, email, name, link string) error {
	n.logger.InfoContext(ctx, "password reset link issued",
		"email", email,
		"name", name,
		"link", link,
	)
	return nil
}
