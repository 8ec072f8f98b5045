package cache

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_cache.go -package=mocks ceslar/internal/cache Cache

// Cache stores JSON-encoded values under string keys. Church documents and
// resolved claims go through it.
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Get decodes the value into dest. A miss is (false, nil).
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Delete(ctx context.Context, key string) error
}

var _ Cache = (*Redis)(nil)
