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

func TestTokenStore_IssueAndRedeem(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewTokenStore(client)
	ctx := context.Background()

	token, err := store.Issue(ctx, domainauth.TokenPurposeVerifyEmail, 42, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := store.Redeem(ctx, domainauth.TokenPurposeVerifyEmail, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestTokenStore_RedeemIsSingleUse(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewTokenStore(client)
	ctx := context.Background()

	token, err := store.Issue(ctx, domainauth.TokenPurposeResetPassword, 7, time.Hour)
	require.NoError(t, err)

	_, err = store.Redeem(ctx, domainauth.TokenPurposeResetPassword, token)
	require.NoError(t, err)

	_, err = store.Redeem(ctx, domainauth.TokenPurposeResetPassword, token)
	assert.Equal(t, ErrNotFound, err)
}

func TestTokenStore_RedeemWrongPurpose(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewTokenStore(client)
	ctx := context.Background()

	token, err := store.Issue(ctx, domainauth.TokenPurposeVerifyEmail, 7, time.Hour)
	require.NoError(t, err)

	// A verification token must not work as a password reset token.
	_, err = store.Redeem(ctx, domainauth.TokenPurposeResetPassword, token)
	assert.Equal(t, ErrNotFound, err)

	// The original purpose still redeems.
	userID, err := store.Redeem(ctx, domainauth.TokenPurposeVerifyEmail, token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
}

func TestTokenStore_RedeemUnknownToken(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewTokenStore(client)

	_, err := store.Redeem(context.Background(), domainauth.TokenPurposeVerifyEmail, "no-such-token")
	assert.Equal(t, ErrNotFound, err)
}

func TestTokenStore_RedeemEmptyToken(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewTokenStore(client)

	_, err := store.Redeem(context.Background(), domainauth.TokenPurposeVerifyEmail, "")
	assert.Equal(t, ErrNotFound, err)
}

func TestTokenStore_TTLExpiration(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewTokenStore(client)
	ctx := context.Background()

	token, err := store.Issue(ctx, domainauth.TokenPurposeVerifyEmail, 42, 100*time.Millisecond)
	require.NoError(t, err)

	time.Sleep(200 * time.Millisecond)

	_, err = store.Redeem(ctx, domainauth.TokenPurposeVerifyEmail, token)
	assert.Equal(t, ErrNotFound, err)
}

func TestTokenStore_IssueNonPositiveTTL(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewTokenStore(client)

	_, err := store.Issue(context.Background(), domainauth.TokenPurposeVerifyEmail, 42, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TTL must be positive")
}
