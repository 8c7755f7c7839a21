package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/WebbPulse/carmodpicker/internal/core"
	"github.com/WebbPulse/carmodpicker/internal/data"
	domainauth "github.com/WebbPulse/carmodpicker/internal/domain/auth"
	"github.com/WebbPulse/carmodpicker/internal/domain/model"
	"github.com/WebbPulse/carmodpicker/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Users    core.UserRepository
	Sessions ports.SessionStore
	Tokens   ports.TokenStore
	Hasher   ports.PasswordHasher
	Mailer   ports.Mailer
	Logger   *slog.Logger

	// SessionTTL bounds how long a login lasts.
	SessionTTL time.Duration
	// VerifyTokenTTL and ResetTokenTTL bound the one-time token flows.
	VerifyTokenTTL time.Duration
	ResetTokenTTL  time.Duration

	// BaseURL is the externally reachable origin used to build the links
	// sent by email, e.g. "https://carmodpicker.example.com".
	BaseURL string

	// OnLogoutError, when set, is invoked whenever a logout could not
	// remove the backing session. The session cookie is cleared either
	// way; this hook exists so operators can count the leaks.
	OnLogoutError func(sessionID string, err error)
}

// AuthService orchestrates login, session resolution, and the email
// verification and password reset flows.
type AuthService struct {
	users    core.UserRepository
	sessions ports.SessionStore
	tokens   ports.TokenStore
	hasher   ports.PasswordHasher
	mailer   ports.Mailer
	logger   *slog.Logger

	sessionTTL    time.Duration
	verifyTTL     time.Duration
	resetTTL      time.Duration
	baseURL       string
	onLogoutError func(sessionID string, err error)
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	sessionTTL := opts.SessionTTL
	if sessionTTL <= 0 {
		sessionTTL = 7 * 24 * time.Hour
	}
	verifyTTL := opts.VerifyTokenTTL
	if verifyTTL <= 0 {
		verifyTTL = 24 * time.Hour
	}
	resetTTL := opts.ResetTokenTTL
	if resetTTL <= 0 {
		resetTTL = time.Hour
	}
	return &AuthService{
		users:         opts.Users,
		sessions:      opts.Sessions,
		tokens:        opts.Tokens,
		hasher:        opts.Hasher,
		mailer:        opts.Mailer,
		logger:        logger.With("component", "auth"),
		sessionTTL:    sessionTTL,
		verifyTTL:     verifyTTL,
		resetTTL:      resetTTL,
		baseURL:       opts.BaseURL,
		onLogoutError: opts.OnLogoutError,
	}
}

// Register creates a new account and kicks off email verification. The
// verification email is best effort: a mail failure does not undo the
// account.
func (s *AuthService) Register(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, core.CreateUserParams{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	if mailErr := s.sendVerification(ctx, user); mailErr != nil {
		s.logger.WarnContext(ctx, "failed to send verification email on signup",
			"user_id", user.ID, "error", mailErr)
	}

	return user, nil
}

// Login verifies credentials and creates a session. Unknown usernames
// and wrong passwords both come back as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, domainauth.Session, error) {
	if username == "" || password == "" {
		return nil, domainauth.Session{}, ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return nil, domainauth.Session{}, ErrInvalidCredentials
		}
		return nil, domainauth.Session{}, fmt.Errorf("lookup user: %w", err)
	}

	if compareErr := s.hasher.Compare(user.PasswordHash, password); compareErr != nil {
		return nil, domainauth.Session{}, ErrInvalidCredentials
	}

	if user.Disabled {
		return nil, domainauth.Session{}, ErrAccountDisabled
	}

	session := domainauth.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, domainauth.Session{}, fmt.Errorf("save session: %w", saveErr)
	}

	s.logger.InfoContext(ctx, "user logged in", "user_id", user.ID)
	return user, session, nil
}

// ResolveSession turns a session ID into the logged-in user. Every
// failure mode collapses to ErrNoSession: a missing, expired, or
// orphaned session and a disabled account all resolve to anonymous.
func (s *AuthService) ResolveSession(ctx context.Context, sessionID string) (*model.User, error) {
	if sessionID == "" {
		return nil, ErrNoSession
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, ErrNoSession
	}
	if session.Expired(time.Now()) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			s.logger.WarnContext(ctx, "failed to delete expired session",
				"session_id", sessionID, "error", deleteErr)
		}
		return nil, ErrNoSession
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, ErrNoSession
	}
	if user.Disabled {
		return nil, ErrNoSession
	}

	return user, nil
}

// Logout removes the session. Store failures are swallowed after
// logging and the optional hook: the caller clears the cookie no matter
// what, so from the user's point of view logout always succeeds.
func (s *AuthService) Logout(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.logger.WarnContext(ctx, "failed to delete session on logout",
			"session_id", sessionID, "error", err)
		if s.onLogoutError != nil {
			s.onLogoutError(sessionID, err)
		}
	}
}

// RequestEmailVerification issues a fresh verification token and emails
// the link to the user's address.
func (s *AuthService) RequestEmailVerification(ctx context.Context, userID int64) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.EmailVerified {
		return ErrEmailAlreadyVerified
	}
	return s.sendVerification(ctx, user)
}

// ConfirmEmailVerification redeems a verification token and marks the
// account's email as verified.
func (s *AuthService) ConfirmEmailVerification(ctx context.Context, token string) (*model.User, error) {
	userID, err := s.tokens.Redeem(ctx, domainauth.TokenPurposeVerifyEmail, token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.users.SetEmailVerified(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("mark email verified: %w", err)
	}

	s.logger.InfoContext(ctx, "email verified", "user_id", user.ID)
	return user, nil
}

// RequestPasswordReset issues a reset token for the account behind the
// given email. Unknown addresses return nil so the endpoint does not
// reveal which emails have accounts.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			s.logger.InfoContext(ctx, "password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("lookup user: %w", err)
	}

	token, err := s.tokens.Issue(ctx, domainauth.TokenPurposeResetPassword, user.ID, s.resetTTL)
	if err != nil {
		return fmt.Errorf("issue reset token: %w", err)
	}

	link := s.buildLink("/forgot-password/confirm", token)
	if mailErr := s.mailer.SendPasswordResetLink(ctx, user.Email, link); mailErr != nil {
		return fmt.Errorf("send reset email: %w", mailErr)
	}
	return nil
}

// ConfirmPasswordReset redeems a reset token and replaces the account
// password.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	req := model.ResetPasswordRequest{NewPassword: newPassword}
	if err := req.Validate(); err != nil {
		return err
	}

	userID, err := s.tokens.Redeem(ctx, domainauth.TokenPurposeResetPassword, token)
	if err != nil {
		return ErrInvalidToken
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if setErr := s.users.SetPasswordHash(ctx, userID, hash); setErr != nil {
		return fmt.Errorf("set password: %w", setErr)
	}

	s.logger.InfoContext(ctx, "password reset completed", "user_id", userID)
	return nil
}

func (s *AuthService) sendVerification(ctx context.Context, user *model.User) error {
	token, err := s.tokens.Issue(ctx, domainauth.TokenPurposeVerifyEmail, user.ID, s.verifyTTL)
	if err != nil {
		return fmt.Errorf("issue verification token: %w", err)
	}

	link := s.buildLink("/verify-email/confirm", token)
	if mailErr := s.mailer.SendVerificationLink(ctx, user.Email, link); mailErr != nil {
		return fmt.Errorf("send verification email: %w", mailErr)
	}
	return nil
}

func (s *AuthService) buildLink(path, token string) string {
	return s.baseURL + path + "?token=" + url.QueryEscape(token)
}
