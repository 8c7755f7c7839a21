package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/WebbPulse/carmodpicker/internal/domain/auth"
	"github.com/WebbPulse/carmodpicker/internal/testutil"
)

func TestSessionStore_SaveAndGet(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewSessionStore(client)
	ctx := context.Background()

	session := domainauth.Session{
		ID:        "test-session-1",
		UserID:    42,
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}

	err := store.Save(ctx, session)
	require.NoError(t, err)

	retrieved, err := store.Get(ctx, "test-session-1")
	require.NoError(t, err)
	assert.Equal(t, session.ID, retrieved.ID)
	assert.Equal(t, session.UserID, retrieved.UserID)
	assert.WithinDuration(t, session.ExpiresAt, retrieved.ExpiresAt, time.Second)
}

func TestSessionStore_GetNonExistent(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewSessionStore(client)

	_, err := store.Get(context.Background(), "non-existent")
	assert.Equal(t, ErrNotFound, err)
}

func TestSessionStore_GetEmptyID(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewSessionStore(client)

	_, err := store.Get(context.Background(), "")
	assert.Equal(t, ErrNotFound, err)
}

func TestSessionStore_Delete(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewSessionStore(client)
	ctx := context.Background()

	session := domainauth.Session{
		ID:        "test-session-delete",
		UserID:    42,
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}

	require.NoError(t, store.Save(ctx, session))

	_, err := store.Get(ctx, session.ID)
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, session.ID))

	_, err = store.Get(ctx, session.ID)
	assert.Equal(t, ErrNotFound, err)
}

func TestSessionStore_TTLExpiration(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewSessionStore(client)
	ctx := context.Background()

	session := domainauth.Session{
		ID:        "test-session-ttl",
		UserID:    42,
		ExpiresAt: time.Now().Add(100 * time.Millisecond),
	}

	require.NoError(t, store.Save(ctx, session))

	time.Sleep(200 * time.Millisecond)

	_, err := store.Get(ctx, session.ID)
	assert.Equal(t, ErrNotFound, err)
}

func TestSessionStore_SaveEmptyID(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewSessionStore(client)

	err := store.Save(context.Background(), domainauth.Session{
		UserID:    42,
		ExpiresAt: time.Now().Add(30 * time.Minute),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session ID cannot be empty")
}

func TestSessionStore_SaveExpiredSession(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewSessionStore(client)

	err := store.Save(context.Background(), domainauth.Session{
		ID:        "expired-session",
		UserID:    42,
		ExpiresAt: time.Now().Add(-time.Hour),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session is expired")
}
