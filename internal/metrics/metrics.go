// Package metrics exports analysis, counting and cache activity as
// Prometheus metrics.
//
// [Metrics] implements [observability.Hooks] on its own registry, so several
// instances (one per test, say) never collide. [Metrics.Handler] serves the
// registry together with a health check; [Serve] runs that handler until its
// context ends.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sanjoy/graphs/pkg/observability"
)

const namespace = "graphs"

// Metrics collects hook events into Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	cheegerRuns     *prometheus.CounterVec
	cheegerSubsets  *prometheus.CounterVec
	cheegerDuration *prometheus.HistogramVec

	candidates    *prometheus.CounterVec
	countRuns     *prometheus.CounterVec
	countDuration *prometheus.HistogramVec

	cacheRequests *prometheus.CounterVec
	cacheBytes    *prometheus.CounterVec
}

// New creates a Metrics with every collector registered on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		cheegerRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cheeger_runs_total",
			Help:      "Cheeger constant computations started, by method.",
		}, []string{"method"}),
		cheegerSubsets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cheeger_subsets_total",
			Help:      "Node subsets scored by Cheeger computations, by method.",
		}, []string{"method"}),
		cheegerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cheeger_duration_seconds",
			Help:      "Duration of Cheeger computations, by method.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"method"}),
		candidates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "count_candidates_total",
			Help:      "Edge sets the regular-graph counter completed (regular=true) or abandoned at a dead end (regular=false).",
		}, []string{"regular"}),
		countRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "count_runs_total",
			Help:      "Finished regular-graph counts, by order and degree.",
		}, []string{"order", "degree"}),
		countDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "count_duration_seconds",
			Help:      "Duration of regular-graph counts, by order.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"order"}),
		cacheRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_requests_total",
			Help:      "Cache lookups, by key type and result.",
		}, []string{"key_type", "result"}),
		cacheBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_written_bytes_total",
			Help:      "Bytes written to the cache, by key type.",
		}, []string{"key_type"}),
	}
	m.registry.MustRegister(
		m.cheegerRuns, m.cheegerSubsets, m.cheegerDuration,
		m.candidates, m.countRuns, m.countDuration,
		m.cacheRequests, m.cacheBytes,
	)
	return m
}

// Registry returns the registry holding every collector.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// OnCheegerStart implements [observability.AnalysisHooks].
func (m *Metrics) OnCheegerStart(method string, _ int) {
	m.cheegerRuns.WithLabelValues(method).Inc()
}

// OnCheegerComplete implements [observability.AnalysisHooks].
func (m *Metrics) OnCheegerComplete(method string, _ int, subsets int, d time.Duration) {
	m.cheegerSubsets.WithLabelValues(method).Add(float64(subsets))
	m.cheegerDuration.WithLabelValues(method).Observe(d.Seconds())
}

// OnCandidate implements [observability.CountHooks].
func (m *Metrics) OnCandidate(_, _ int, regular bool) {
	m.candidates.WithLabelValues(strconv.FormatBool(regular)).Inc()
}

// OnCountComplete implements [observability.CountHooks].
func (m *Metrics) OnCountComplete(order, degree, _ int, d time.Duration) {
	m.countRuns.WithLabelValues(strconv.Itoa(order), strconv.Itoa(degree)).Inc()
	m.countDuration.WithLabelValues(strconv.Itoa(order)).Observe(d.Seconds())
}

// OnCacheHit implements [observability.CacheHooks].
func (m *Metrics) OnCacheHit(_ context.Context, keyType string) {
	m.cacheRequests.WithLabelValues(keyType, "hit").Inc()
}

// OnCacheMiss implements [observability.CacheHooks].
func (m *Metrics) OnCacheMiss(_ context.Context, keyType string) {
	m.cacheRequests.WithLabelValues(keyType, "miss").Inc()
}

// OnCacheSet implements [observability.CacheHooks].
func (m *Metrics) OnCacheSet(_ context.Context, keyType string, size int) {
	m.cacheBytes.WithLabelValues(keyType).Add(float64(size))
}

var _ observability.Hooks = (*Metrics)(nil)

// Handler returns a router serving /metrics and /healthz.
func (m *Metrics) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	return r
}

// Serve listens on addr and serves [Metrics.Handler] until ctx is done, then
// shuts the server down.
func Serve(ctx context.Context, addr string, m *Metrics, logger *log.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           m.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("serving metrics", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
