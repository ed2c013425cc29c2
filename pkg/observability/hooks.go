// Package observability provides hooks for metrics and tracing of the
// exhaustive analyses, the regular-graph counter and the result cache.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Hooks are injected
// explicitly: analysis and counting accept them as options, the cache
// wrapper takes them as a constructor argument. Nothing here is global.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Let the caller pass a custom implementation where it wants events
//
// The Prometheus implementation lives in internal/metrics and is wired by
// the CLI.
//
// # Usage
//
//	hooks := metrics.New()
//	value, ok := analysis.ExactCheeger(g, analysis.WithHooks(hooks))
//	n := counting.CountRegular(6, 3, counting.WithHooks(hooks))
package observability

import (
	"context"
	"time"
)

// Cheeger computation methods reported to [AnalysisHooks].
const (
	MethodExact   = "exact"
	MethodSampled = "sampled"
)

// =============================================================================
// Analysis Hooks
// =============================================================================

// AnalysisHooks receives events from Cheeger constant computations.
type AnalysisHooks interface {
	// OnCheegerStart records the start of a search over a graph of the given order.
	OnCheegerStart(method string, order int)

	// OnCheegerComplete records a finished search and how many subsets it scored.
	OnCheegerComplete(method string, order, subsets int, duration time.Duration)
}

// =============================================================================
// Count Hooks
// =============================================================================

// CountHooks receives events from the regular-graph counter.
type CountHooks interface {
	// OnCandidate records one completed, regular edge set (regular == true)
	// or one partial edge set abandoned because no pair could extend it
	// (regular == false).
	OnCandidate(order, degree int, regular bool)

	// OnCountComplete records the number of isomorphism classes found.
	OnCountComplete(order, degree, count int, duration time.Duration)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopAnalysisHooks is a no-op implementation of AnalysisHooks.
type NoopAnalysisHooks struct{}

func (NoopAnalysisHooks) OnCheegerStart(string, int)                        {}
func (NoopAnalysisHooks) OnCheegerComplete(string, int, int, time.Duration) {}

// NoopCountHooks is a no-op implementation of CountHooks.
type NoopCountHooks struct{}

func (NoopCountHooks) OnCandidate(int, int, bool)                   {}
func (NoopCountHooks) OnCountComplete(int, int, int, time.Duration) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// Hooks bundles every hook category. Implementations such as the Prometheus
// collector satisfy all three interfaces at once.
type Hooks interface {
	AnalysisHooks
	CountHooks
	CacheHooks
}

// Noop implements [Hooks] by discarding every event.
type Noop struct {
	NoopAnalysisHooks
	NoopCountHooks
	NoopCacheHooks
}

var _ Hooks = Noop{}
