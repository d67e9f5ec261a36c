package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mshulgin/go-account-service/internal/logger"
)

const codeKeyPrefix = "email_login_code:"

// CodeCacheRepository stores email login codes in Redis under a random
// one-time lookup id. Expiry is enforced by the Redis TTL, not the code.
type CodeCacheRepository struct {
	client *redis.Client
}

func NewCodeCacheRepository(client *redis.Client) *CodeCacheRepository {
	return &CodeCacheRepository{client: client}
}

// Get returns the code stored under the lookup id, or "" when it never
// existed or already expired.
func (r *CodeCacheRepository) Get(ctx context.Context, id string) (string, error) {
	key := codeKeyPrefix + id

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow("code cache get", "key", key, "hit", err == nil, "error", err)

	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Set stores a code under the lookup id with the given TTL.
func (r *CodeCacheRepository) Set(ctx context.Context, id, code string, ttl time.Duration) error {
	key := codeKeyPrefix + id

	err := r.client.Set(ctx, key, code, ttl).Err()

	logger.Log.Infow("code cache set", "key", key, "ttl", ttl, "error", err)

	return err
}
