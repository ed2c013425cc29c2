package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sanjoy/graphs/internal/metrics"
)

// addMetricsFlag registers --metrics-addr on cmd.
func addMetricsFlag(cmd *cobra.Command, addr *string) {
	cmd.Flags().StringVar(addr, "metrics-addr", "", "serve Prometheus metrics on this address while the command runs (e.g. :9090)")
}

// metricsAddr returns the flag value, or the configured address when the
// flag was not given.
func (c *CLI) metricsAddr(cmd *cobra.Command, flag string) string {
	if cmd.Flags().Changed("metrics-addr") {
		return flag
	}
	return c.cfg.Metrics.Addr
}

// withMetrics runs fn. When addr is set, analysis, counting and cache events
// of fn are collected into a fresh registry served on addr until fn returns.
// An early server failure cancels the context passed to fn.
func (c *CLI) withMetrics(ctx context.Context, addr string, fn func(ctx context.Context) error) error {
	if addr == "" {
		return fn(ctx)
	}

	m := metrics.New()
	saved := c.hooks
	c.hooks = m
	defer func() { c.hooks = saved }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := metrics.Serve(gctx, addr, m, loggerFromContext(ctx)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})

	err := fn(gctx)
	cancel()
	if serveErr := g.Wait(); serveErr != nil {
		return serveErr
	}
	return err
}
