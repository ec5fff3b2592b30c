// Package cache stores rendered API responses. A Redis backend is used
// when configured; otherwise Noop turns every lookup into a miss.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zapponejosh/zmanim-api/internal/logger"
)

// ErrMiss is returned by Get when the key is not cached.
var ErrMiss = errors.New("cache miss")

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}

// keyPrefix namespaces every key so the Redis instance can be shared.
const keyPrefix = "zmanim"

// Key joins parts into a cache key.
func Key(parts ...string) string {
	return keyPrefix + ":" + strings.Join(parts, ":")
}

// =============================================================================
// Redis
// =============================================================================

// Redis is a Cache backed by a Redis server.
type Redis struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedis connects to addr and verifies the server answers.
func NewRedis(ctx context.Context, addr string, logger *slog.Logger) (*Redis, error) {
	if logger == nil {
		logger = slog.Default()
	}
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}

	logger.Info("redis connected", slog.String("addr", addr))
	return &Redis{client: client, logger: logger}, nil
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return b, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Close() error {
	r.logger.Info("closing redis connection")
	return r.client.Close()
}

// =============================================================================
// Noop
// =============================================================================

// Noop never stores anything.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, error)              { return nil, ErrMiss }
func (Noop) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (Noop) Close() error                                             { return nil }

// =============================================================================
// Read-through
// =============================================================================

// Through returns the cached value for key, or calls fill and stores its
// result for ttl. Cache errors are logged and otherwise ignored; only an
// error from fill is returned. hit reports whether the value came from c.
func Through(ctx context.Context, c Cache, key string, ttl time.Duration, fill func() ([]byte, error)) (value []byte, hit bool, err error) {
	value, err = c.Get(ctx, key)
	switch {
	case err == nil:
		return value, true, nil
	case !errors.Is(err, ErrMiss):
		logger.Warn(ctx, "cache get failed", slog.String("key", key), slog.Any("error", err))
	}

	value, err = fill()
	if err != nil {
		return nil, false, err
	}
	if err := c.Set(ctx, key, value, ttl); err != nil {
		logger.Warn(ctx, "cache set failed", slog.String("key", key), slog.Any("error", err))
	}
	return value, false, nil
}
