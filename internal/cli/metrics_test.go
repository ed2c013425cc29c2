package cli

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/sanjoy/graphs/internal/metrics"
	"github.com/sanjoy/graphs/pkg/observability"
)

func TestWithMetricsCollectsCount(t *testing.T) {
	newTestEnv(t)
	saved := output
	output = io.Discard
	defer func() { output = saved }()

	c := New(io.Discard, LogInfo)
	var m *metrics.Metrics
	err := c.withMetrics(context.Background(), "127.0.0.1:0", func(ctx context.Context) error {
		var ok bool
		if m, ok = c.hooks.(*metrics.Metrics); !ok {
			t.Fatalf("hooks = %T, want *metrics.Metrics", c.hooks)
		}
		return c.runCount(ctx, []*countJob{{Order: 4, Degree: 2}}, countOptions{})
	})
	if err != nil {
		t.Fatalf("withMetrics error: %v", err)
	}
	if _, ok := c.hooks.(observability.Noop); !ok {
		t.Errorf("hooks after withMetrics = %T, want observability.Noop", c.hooks)
	}

	for _, name := range []string{
		"graphs_count_candidates_total",
		"graphs_count_runs_total",
		"graphs_cache_requests_total",
		"graphs_cache_written_bytes_total",
	} {
		n, err := testutil.GatherAndCount(m.Registry(), name)
		if err != nil {
			t.Fatalf("GatherAndCount(%s) error: %v", name, err)
		}
		if n == 0 {
			t.Errorf("%s has no samples after a count", name)
		}
	}
}

func TestWithMetricsDisabled(t *testing.T) {
	c := New(io.Discard, LogInfo)
	called := false
	err := c.withMetrics(context.Background(), "", func(context.Context) error {
		called = true
		if _, ok := c.hooks.(observability.Noop); !ok {
			t.Errorf("hooks = %T, want observability.Noop", c.hooks)
		}
		return nil
	})
	if err != nil || !called {
		t.Errorf("withMetrics = %v, called %v", err, called)
	}
}

func TestWithMetricsServerFailure(t *testing.T) {
	c := New(io.Discard, LogInfo)
	err := c.withMetrics(context.Background(), "no-port", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	if err == nil {
		t.Fatal("withMetrics should report the listen error")
	}
	if errors.Is(err, context.Canceled) {
		t.Errorf("withMetrics = %v, want the server error", err)
	}
}
