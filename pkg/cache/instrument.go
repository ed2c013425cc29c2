package cache

import (
	"context"
	"time"

	"github.com/sanjoy/graphs/pkg/observability"
)

// Instrumented reports the outcome of every Get and Set on an inner cache.
type Instrumented struct {
	inner Cache
	hooks observability.CacheHooks
}

// Instrument wraps c so that hits, misses and writes reach hooks. The key
// type passed to hooks is [KeyType] of the key.
func Instrument(c Cache, hooks observability.CacheHooks) *Instrumented {
	if hooks == nil {
		hooks = observability.NoopCacheHooks{}
	}
	return &Instrumented{inner: c, hooks: hooks}
}

// Get implements [Cache].
func (c *Instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, hit, err := c.inner.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if hit {
		c.hooks.OnCacheHit(ctx, KeyType(key))
	} else {
		c.hooks.OnCacheMiss(ctx, KeyType(key))
	}
	return data, hit, nil
}

// Set implements [Cache].
func (c *Instrumented) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.inner.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	c.hooks.OnCacheSet(ctx, KeyType(key), len(data))
	return nil
}

// Delete implements [Cache].
func (c *Instrumented) Delete(ctx context.Context, key string) error {
	return c.inner.Delete(ctx, key)
}

// Close implements [Cache].
func (c *Instrumented) Close() error {
	return c.inner.Close()
}

var _ Cache = (*Instrumented)(nil)
