package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"
	"time"

	domainauth "github.com/WebbPulse/carmodpicker/internal/domain/auth"
)

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// TokenStore issues and redeems single-use tokens for the email verification
// and password reset flows. Redeem consumes the token: a second redeem of the
// same token must fail.
type TokenStore interface {
	Issue(ctx context.Context, purpose domainauth.TokenPurpose, userID int64, ttl time.Duration) (string, error)
	Redeem(ctx context.Context, purpose domainauth.TokenPurpose, token string) (int64, error)
}

// PasswordHasher hashes and verifies login credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}

// Mailer delivers the links generated by the verification and reset flows.
type Mailer interface {
	SendVerificationLink(ctx context.Context, to, link string) error
	SendPasswordResetLink(ctx context.Context, to, link string) error
}
