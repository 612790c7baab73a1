package cache

import (
	"context"
	"time"
)

// Cache is the contract of the cache layer so the backing store can be swapped (Redis, in-memory)
type Cache interface {
	// Get unmarshals the cached value into dest.
	// found = false on a miss, dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value with a TTL
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys; missing keys are ignored
	Delete(ctx context.Context, keys ...string) error

	Ping(ctx context.Context) error
}
