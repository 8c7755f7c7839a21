// Package mail delivers account emails: verification links and password
// reset links.
package mail

import (
	"context"
	"log/slog"
)

// LogMailer writes outgoing mail to the log instead of sending it. Used
// in development so the flows work without an SMTP server; the link
// shows up in the service log.
type LogMailer struct {
	Logger *slog.Logger
}

// NewLogMailer creates a mailer that logs instead of sending.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMailer{Logger: logger.With("component", "mailer")}
}

func (m *LogMailer) SendVerificationLink(ctx context.Context, to, link string) error {
	m.Logger.InfoContext(ctx, "verification email (dev mode, not sent)", "to", to, "link", link)
	return nil
}

func (m *LogMailer) SendPasswordResetLink(ctx context.Context, to, link string) error {
	m.Logger.InfoContext(ctx, "password reset email (dev mode, not sent)", "to", to, "link", link)
	return nil
}
