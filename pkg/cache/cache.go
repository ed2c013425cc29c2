// Package cache stores expensive analysis results between runs.
//
// Counting regular graphs and computing exact Cheeger constants take
// seconds to minutes, and their results depend only on their inputs. The
// command-line tool keeps them in a [Cache] keyed by a [Keyer]:
//
//   - [FileCache] writes one JSON file per entry below the XDG cache
//     directory and is the default.
//   - [RedisCache] shares results between machines through Redis.
//   - [NullCache] disables caching.
//
// [Instrument] wraps any cache and reports hits, misses and writes to
// [observability.CacheHooks].
//
// Values are opaque bytes; callers choose the encoding.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional per-entry expiry.
type Cache interface {
	// Get returns the value stored under key. A missing or expired entry
	// is reported as hit == false with a nil error.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. A ttl <= 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
