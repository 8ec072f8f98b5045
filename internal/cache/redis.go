// Package cache provides caching functionality using Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis wraps the Redis client.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a new Redis connection.
func NewRedis(uri string) *Redis {
	opt, err := redis.ParseURL("redis://" + uri)
	if err != nil {
		slog.Error("failed to parse Redis URI", "error", err)
		os.Exit(1)
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect to Redis", "error", err)
		os.Exit(1)
	}

	slog.Info("connected to Redis", "addr", opt.Addr)

	return &Redis{client: client}
}

// NewRedisFromClient wraps an existing client.
func NewRedisFromClient(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Client exposes the underlying client for packages that need raw commands.
func (r *Redis) Client() *redis.Client {
	return r.client
}

// Close closes the Redis connection.
func (r *Redis) Close() {
	if err := r.client.Close(); err != nil {
		slog.Error("error closing Redis connection", "error", err)
	}
	slog.Info("disconnected from Redis")
}

// Set stores a value in cache with TTL.
func (r *Redis) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	return r.client.Set(ctx, key, data, ttl).Err()
}

// Get retrieves a value from cache.
// Returns false if key doesn't exist.
func (r *Redis) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal value: %w", err)
	}

	return true, nil
}

// Delete removes a key from cache.
func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// ClaimsCacheKey generates a cache key for a caller's resolved claims.
func ClaimsCacheKey(uid string) string {
	return fmt.Sprintf("claims:%s", uid)
}

// ChurchCacheKey generates a cache key for a church document.
func ChurchCacheKey(churchID string) string {
	return fmt.Sprintf("church:%s", churchID)
}
