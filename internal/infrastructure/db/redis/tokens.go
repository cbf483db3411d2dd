package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rentwise/property-system/internal/core/domain"
)

// TokenStore persists refresh tokens in Redis.
// Key format: refresh:<token>, value: account id, expiring with the token TTL.
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore creates a TokenStore wrapping the given Redis client.
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Save records the token for the account, expiring after ttl.
func (s *TokenStore) Save(ctx context.Context, token string, accountID uint, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(token), strconv.FormatUint(uint64(accountID), 10), ttl).Err()
}

// Take consumes the token and returns the account it was issued to. GETDEL
// makes the read-and-invalidate atomic, so a token can be redeemed once.
// An absent or expired token yields domain.ErrInvalidCredentials.
func (s *TokenStore) Take(ctx context.Context, token string) (uint, error) {
	val, err := s.client.GetDel(ctx, s.key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, domain.ErrInvalidCredentials
		}
		return 0, fmt.Errorf("take refresh token: %w", err)
	}

	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidCredentials
	}
	return uint(id), nil
}

func (s *TokenStore) key(token string) string {
	return "refresh:" + token
}
