package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/WebbPulse/carmodpicker/config"
)

// SMTPMailer sends account emails through a plain SMTP relay.
type SMTPMailer struct {
	addr string
	from string
	auth smtp.Auth
}

// NewSMTPMailer creates a mailer from config. Auth is used only when a
// username is configured.
func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	m := &SMTPMailer{
		addr: net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		from: cfg.From,
	}
	if cfg.Username != "" {
		m.auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return m
}

func (m *SMTPMailer) SendVerificationLink(ctx context.Context, to, link string) error {
	body := "Confirm your email address by opening the link below.\r\n\r\n" + link + "\r\n"
	return m.send(ctx, to, "Verify your CarModPicker email", body)
}

func (m *SMTPMailer) SendPasswordResetLink(ctx context.Context, to, link string) error {
	body := "A password reset was requested for your account. Open the link below to choose a new password.\r\n\r\n" +
		link + "\r\n\r\nIf you did not request this, ignore this email.\r\n"
	return m.send(ctx, to, "Reset your CarModPicker password", body)
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
