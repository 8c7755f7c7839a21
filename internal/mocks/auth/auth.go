package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	domainauth "github.com/WebbPulse/carmodpicker/internal/domain/auth"
	"github.com/WebbPulse/carmodpicker/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.SessionStore   = (*MemorySessionStore)(nil)
	_ ports.TokenStore     = (*MemoryTokenStore)(nil)
	_ ports.PasswordHasher = (*FakeHasher)(nil)
	_ ports.Mailer         = (*RecordingMailer)(nil)
)

// NotFoundErr is the sentinel both memory stores return for misses.
type NotFoundErr struct{}

func (NotFoundErr) Error() string { return "not found" }

// MemorySessionStore is an in-memory session store for tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session

	// Optional error injection per operation.
	SaveErr   error
	GetErr    error
	DeleteErr error
}

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]domainauth.Session)}
}

func (s *MemorySessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *MemorySessionStore) Get(ctx context.Context, id string) (domainauth.Session, error) {
	if s.GetErr != nil {
		return domainauth.Session{}, s.GetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return domainauth.Session{}, NotFoundErr{}
	}
	return sess, nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, id string) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Len reports how many sessions are stored.
func (s *MemorySessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

type tokenRecord struct {
	purpose domainauth.TokenPurpose
	userID  int64
}

// MemoryTokenStore is an in-memory single-use token store for tests.
// TTLs are recorded but not enforced.
type MemoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]tokenRecord
	seq    int

	IssueErr  error
	RedeemErr error
}

// NewMemoryTokenStore creates an empty in-memory token store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]tokenRecord)}
}

func (s *MemoryTokenStore) Issue(ctx context.Context, purpose domainauth.TokenPurpose, userID int64, ttl time.Duration) (string, error) {
	if s.IssueErr != nil {
		return "", s.IssueErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	token := "token-" + string(purpose) + "-" + strconv.Itoa(s.seq)
	s.tokens[token] = tokenRecord{purpose: purpose, userID: userID}
	return token, nil
}

func (s *MemoryTokenStore) Redeem(ctx context.Context, purpose domainauth.TokenPurpose, token string) (int64, error) {
	if s.RedeemErr != nil {
		return 0, s.RedeemErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.tokens[token]
	if !ok || rec.purpose != purpose {
		return 0, NotFoundErr{}
	}
	delete(s.tokens, token)
	return rec.userID, nil
}

// FakeHasher is a transparent "hash" for tests: the hash of p is "hashed:" + p.
type FakeHasher struct{}

func (FakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (FakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

// SentMail records one captured outgoing email.
type SentMail struct {
	Kind string // "verify" or "reset"
	To   string
	Link string
}

// RecordingMailer captures outgoing mail instead of sending it.
type RecordingMailer struct {
	mu   sync.Mutex
	Sent []SentMail

	Err error
}

func (m *RecordingMailer) SendVerificationLink(ctx context.Context, to, link string) error {
	return m.record("verify", to, link)
}

func (m *RecordingMailer) SendPasswordResetLink(ctx context.Context, to, link string) error {
	return m.record("reset", to, link)
}

func (m *RecordingMailer) record(kind, to, link string) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, SentMail{Kind: kind, To: to, Link: link})
	return nil
}

// Last returns the most recently sent mail, or a zero value when none.
func (m *RecordingMailer) Last() SentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Sent) == 0 {
		return SentMail{}
	}
	return m.Sent[len(m.Sent)-1]
}
