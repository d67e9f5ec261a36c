package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mshulgin/go-account-service/internal/logger"
)

const tokenKeyPrefix = "session_token:"

// TokenCacheRepository keeps issued session tokens in Redis, keyed by the
// user's external UID. While a cached token lives, repeated logins reuse it
// instead of minting a fresh one.
type TokenCacheRepository struct {
	client *redis.Client
}

func NewTokenCacheRepository(client *redis.Client) *TokenCacheRepository {
	return &TokenCacheRepository{client: client}
}

// Get returns the cached token for the given UID, or "" when absent or expired.
func (r *TokenCacheRepository) Get(ctx context.Context, uid string) (string, error) {
	key := tokenKeyPrefix + uid

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow("token cache get", "key", key, "hit", err == nil, "error", err)

	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Set stores a token for the given UID with the given TTL.
func (r *TokenCacheRepository) Set(ctx context.Context, uid, token string, ttl time.Duration) error {
	key := tokenKeyPrefix + uid

	err := r.client.Set(ctx, key, token, ttl).Err()

	logger.Log.Infow("token cache set", "key", key, "ttl", ttl, "error", err)

	return err
}
