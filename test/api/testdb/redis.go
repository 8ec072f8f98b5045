//go:build api

package testdb

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// RedisContainer wraps a Redis testcontainer. It backs the church cache, the
// claims cache and the rate limiter.
type RedisContainer struct {
	Container testcontainers.Container
	URI       string
	Client    *redis.Client
}

// SetupRedis starts a Redis testcontainer.
func SetupRedis(ctx context.Context) (*RedisContainer, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		return nil, err
	}

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &RedisContainer{
		Container: container,
		URI:       endpoint,
		Client:    client,
	}, nil
}

// Cleanup terminates the Redis container.
func (rc *RedisContainer) Cleanup(ctx context.Context) error {
	if rc.Client != nil {
		_ = rc.Client.Close()
	}
	if rc.Container != nil {
		return rc.Container.Terminate(ctx)
	}
	return nil
}

// FlushDB clears cached churches, cached claims and rate-limit counters.
func (rc *RedisContainer) FlushDB(ctx context.Context) error {
	return rc.Client.FlushDB(ctx).Err()
}

// Exists reports whether key is present.
func (rc *RedisContainer) Exists(ctx context.Context, key string) bool {
	n, err := rc.Client.Exists(ctx, key).Result()
	return err == nil && n > 0
}
