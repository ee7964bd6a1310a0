// Package cache stores fetched API responses for the client data layer, in
// process memory or in Redis.
package cache

import (
	"context"
	"time"
)

// Cache holds raw response bodies by key. Implementations are safe for
// concurrent use.
type Cache interface {
	// Get returns ErrMiss when the key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value for ttl; a zero ttl uses the cache default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrMiss   Error = "cache miss"
	ErrClosed Error = "cache closed"
)
