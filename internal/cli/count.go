package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sanjoy/graphs/pkg/counting"
	gerrors "github.com/sanjoy/graphs/pkg/errors"
	"github.com/sanjoy/graphs/pkg/graphio"
)

// countOptions holds the flags of the count command.
type countOptions struct {
	metricsAddr string
	jobs        int
	show        bool
	noCache     bool
}

// countJob is one ORDER:DEGREE argument and, once run, its result.
type countJob struct {
	Order  int      `json:"order"`
	Degree int      `json:"degree"`
	Count  int      `json:"count"`
	Graphs []string `json:"graphs"` // graph6 form of each representative
	cached bool
}

// countCommand creates the count command.
func (c *CLI) countCommand() *cobra.Command {
	opts := countOptions{}

	cmd := &cobra.Command{
		Use:   "count ORDER:DEGREE...",
		Short: "Count regular graphs up to isomorphism",
		Long: fmt.Sprintf(`Count enumerates the simple DEGREE-regular graphs on ORDER nodes and
reports how many are pairwise non-isomorphic. Orders up to %d are supported.

Independent ORDER:DEGREE pairs run concurrently. Results are cached, so
repeating a count is instant. With --metrics-addr the search's candidate
and cache counters are served as Prometheus metrics while it runs.`, counting.MaxOrder),
		Example: `  graphs count 6:3
  graphs count 6:2 7:2 7:4 --show`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs := make([]*countJob, len(args))
			for i, arg := range args {
				job, err := parseCountJob(arg)
				if err != nil {
					return err
				}
				jobs[i] = job
			}
			addr := c.metricsAddr(cmd, opts.metricsAddr)
			return c.withMetrics(cmd.Context(), addr, func(ctx context.Context) error {
				return c.runCount(ctx, jobs, opts)
			})
		},
	}

	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", runtime.NumCPU(), "maximum counts running at once")
	cmd.Flags().BoolVar(&opts.show, "show", false, "print the graph6 form of every representative")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	addMetricsFlag(cmd, &opts.metricsAddr)

	return cmd
}

// parseCountJob parses "ORDER:DEGREE".
func parseCountJob(arg string) (*countJob, error) {
	o, d, ok := strings.Cut(arg, ":")
	if !ok {
		return nil, gerrors.New(gerrors.ErrCodeInvalidInput, "expected ORDER:DEGREE, got %q", arg)
	}
	order, err := strconv.Atoi(o)
	if err != nil {
		return nil, gerrors.New(gerrors.ErrCodeInvalidInput, "invalid order %q", o)
	}
	degree, err := strconv.Atoi(d)
	if err != nil {
		return nil, gerrors.New(gerrors.ErrCodeInvalidInput, "invalid degree %q", d)
	}
	if err := counting.Validate(order, degree); err != nil {
		return nil, gerrors.Wrap(gerrors.ErrCodeInvalidInput, err, "cannot count %s", arg)
	}
	return &countJob{Order: order, Degree: degree}, nil
}

func (c *CLI) runCount(ctx context.Context, jobs []*countJob, opts countOptions) error {
	logger := loggerFromContext(ctx)
	rc := c.newCache(ctx, opts.noCache)
	defer rc.Close()

	spinner := newSpinner(ctx, fmt.Sprintf("Counting %d job(s)...", len(jobs)))
	spinner.Start()
	prog := newProgress(logger)

	g, gctx := errgroup.WithContext(ctx)
	if opts.jobs > 0 {
		g.SetLimit(opts.jobs)
	}
	for _, job := range jobs {
		g.Go(func() error {
			return c.count(gctx, rc, job)
		})
	}
	err := g.Wait()
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Counted %d job(s)", len(jobs)))

	for _, job := range jobs {
		printSuccess("%d-regular graphs on %d nodes: %s", job.Degree, job.Order, StyleNumber.Render(strconv.Itoa(job.Count)))
		printSource(job.cached)
		if opts.show {
			for _, form := range job.Graphs {
				printFile(form)
			}
		}
	}
	return nil
}

// count fills in job, from rc when possible.
func (c *CLI) count(ctx context.Context, rc *resultCache, job *countJob) error {
	logger := loggerFromContext(ctx).With("order", job.Order, "degree", job.Degree)
	key := rc.keys.CountKey(job.Order, job.Degree)

	data, hit, err := rc.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "err", err)
	}
	if hit {
		var cached countJob
		if err := json.Unmarshal(data, &cached); err == nil && cached.Order == job.Order && cached.Degree == job.Degree {
			*job = cached
			job.cached = true
			return nil
		}
		logger.Debug("discarding unreadable cache entry")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	graphs := counting.RegularGraphs(job.Order, job.Degree, counting.WithLogger(logger), counting.WithHooks(c.hooks))
	job.Count = len(graphs)
	job.Graphs = make([]string, len(graphs))
	for i, g := range graphs {
		form, err := graphio.EncodeGraph6(g)
		if err != nil {
			return gerrors.Wrap(gerrors.ErrCodeInternal, err, "encode representative")
		}
		job.Graphs[i] = form
	}

	data, err = json.Marshal(job)
	if err != nil {
		return gerrors.Wrap(gerrors.ErrCodeInternal, err, "encode count result")
	}
	if err := rc.Set(ctx, key, data, c.cfg.Cache.TTL.Duration); err != nil {
		logger.Warn("cache write failed", "err", err)
	}
	return nil
}
