package cache

import (
	"context"
	"time"
)

// Cache is the cache-store contract the access layer consumes. A missing
// key is reported through the bool, never through the error: callers must
// be able to tell "miss" (normal) apart from "store unreachable" (degraded).
type Cache interface {
	// Get returns the value for key. The bool is false on a cache miss.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key. A zero ttl selects the configured default.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying connection pool.
	Close() error
}

// Options configure a cache instance.
type Options struct {
	// DefaultTTL bounds staleness when an invalidation is lost.
	DefaultTTL time.Duration

	// KeyPrefix namespaces every key, e.g. per deployment.
	KeyPrefix string
}
