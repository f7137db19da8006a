package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/studydesk/internal/logger"
)

// ErrCacheMiss is returned when a key is not cached.
var ErrCacheMiss = errors.New("cache miss")

// GenerationCacheRepository caches provider responses in Redis.
type GenerationCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached responses
}

// NewGenerationCacheRepository creates a new repository instance with the given TTL.
func NewGenerationCacheRepository(client *redis.Client, expiration time.Duration) *GenerationCacheRepository {
	return &GenerationCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached response for key or ErrCacheMiss.
func (r *GenerationCacheRepository) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow("cache get",
		"key", key,
		"result_len", len(val),
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Set caches value under key with the repository expiration.
func (r *GenerationCacheRepository) Set(ctx context.Context, key, value string) error {
	err := r.client.Set(ctx, key, value, r.exp).Err()

	logger.Log.Infow("cache set",
		"key", key,
		"value_len", len(value),
		"error", err,
	)

	return err
}
