package config

import "time"

const (
	minBcryptCost = 10
	maxBcryptCost = 16
)

// AuthConfig groups session and credential configuration.
type AuthConfig struct {
	// SessionTTL is how long a login session stays valid.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"168h"`

	// BcryptCost is the bcrypt work factor for password hashing.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"12"`

	// VerifyTokenTTL is how long an email verification token stays valid.
	VerifyTokenTTL time.Duration `env:"VERIFY_TOKEN_TTL" envDefault:"24h"`

	// ResetTokenTTL is how long a password reset token stays valid.
	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL" envDefault:"1h"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL <= 0 {
		a.SessionTTL = 168 * time.Hour
	}
	if a.BcryptCost < minBcryptCost {
		a.BcryptCost = minBcryptCost
	}
	if a.BcryptCost > maxBcryptCost {
		a.BcryptCost = maxBcryptCost
	}
	if a.VerifyTokenTTL <= 0 {
		a.VerifyTokenTTL = 24 * time.Hour
	}
	if a.ResetTokenTTL <= 0 {
		a.ResetTokenTTL = time.Hour
	}
}
