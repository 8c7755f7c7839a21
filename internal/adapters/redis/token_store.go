package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	domainauth "github.com/WebbPulse/carmodpicker/internal/domain/auth"
)

const tokenPrefix = "token:"

// TokenStore issues single-use tokens for email verification and
// password reset flows. A token maps to the user it was issued for and
// disappears when redeemed or when its TTL lapses, whichever is first.
type TokenStore struct {
	client redis.UniversalClient
}

// NewTokenStore creates a Redis-backed token store.
func NewTokenStore(client redis.UniversalClient) *TokenStore {
	return &TokenStore{client: client}
}

func (s *TokenStore) Issue(ctx context.Context, purpose domainauth.TokenPurpose, userID int64, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", errors.New("token TTL must be positive")
	}

	token := uuid.NewString()
	key := tokenKey(purpose, token)
	if err := s.client.Set(ctx, key, strconv.FormatInt(userID, 10), ttl).Err(); err != nil {
		return "", fmt.Errorf("redis set token: %w", err)
	}
	return token, nil
}

func (s *TokenStore) Redeem(ctx context.Context, purpose domainauth.TokenPurpose, token string) (int64, error) {
	if token == "" {
		return 0, ErrNotFound
	}

	// GETDEL makes redemption atomic: two concurrent redeems of the same
	// token cannot both succeed.
	data, err := s.client.GetDel(ctx, tokenKey(purpose, token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("redis getdel token: %w", err)
	}

	userID, err := strconv.ParseInt(data, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse token payload: %w", err)
	}
	return userID, nil
}

func tokenKey(purpose domainauth.TokenPurpose, token string) string {
	return tokenPrefix + string(purpose) + ":" + token
}
