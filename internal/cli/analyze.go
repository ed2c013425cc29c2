package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sanjoy/graphs/pkg/analysis"
	gerrors "github.com/sanjoy/graphs/pkg/errors"
	"github.com/sanjoy/graphs/pkg/graph"
	"github.com/sanjoy/graphs/pkg/graphio"
	"github.com/sanjoy/graphs/pkg/random"
)

// analyzeOptions holds the flags of the analyze command.
type analyzeOptions struct {
	metricsAddr string
	input       string
	seed        uint32
	samples     int
	noCache     bool
}

// analyzeCommand creates the analyze command.
func (c *CLI) analyzeCommand() *cobra.Command {
	opts := analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [constructor args...]",
		Short: "Report degree statistics, consistency and the Cheeger constant of a graph",
		Long: `Analyze builds a graph from a constructor expression, or reads one with
--input, and reports its order, edge count, minimum degree, regularity and
structural consistency.

Graphs of up to 24 nodes also get their exact Cheeger constant, which is
cached by the graph's graph6 form. Larger graphs need --samples for a
randomized upper bound. With --metrics-addr the search and cache counters
are served as Prometheus metrics while the analysis runs.`,
		Example: `  graphs analyze ring 8
  graphs analyze random 16 3 42 connected
  graphs analyze replacement_product outer.g6 inner.g6
  graphs analyze --input big.json --samples 5000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				opts.seed = c.cfg.Seed
			}
			addr := c.metricsAddr(cmd, opts.metricsAddr)
			return c.withMetrics(cmd.Context(), addr, func(ctx context.Context) error {
				return c.runAnalyze(ctx, args, opts)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "read the graph from a .json or .g6 file")
	cmd.Flags().Uint32Var(&opts.seed, "seed", 1, "seed for random graphs and sampling")
	cmd.Flags().IntVar(&opts.samples, "samples", 0, "random subsets for the sampled Cheeger bound (0 disables)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	addMetricsFlag(cmd, &opts.metricsAddr)

	return cmd
}

func (c *CLI) runAnalyze(ctx context.Context, args []string, opts analyzeOptions) error {
	logger := loggerFromContext(ctx)

	src, err := loadGraph(args, opts.input, opts.seed)
	if err != nil {
		return err
	}
	g := src.g
	n, _ := g.Order()
	edges, _ := graph.EdgeList(g)

	fmt.Fprintln(output, StyleTitle.Render(src.name))
	printKeyValue("nodes", strconv.Itoa(n))
	printKeyValue("edges", strconv.Itoa(len(edges)))
	if d, ok := analysis.MinDegree(g); ok {
		printKeyValue("min degree", strconv.Itoa(d))
	}
	if d, ok := analysis.IsRegular(g); ok {
		printKeyValue("regular", fmt.Sprintf("yes, degree %d", d))
	} else {
		printKeyValue("regular", "no")
	}

	if err := graph.CheckConsistency(g); err != nil {
		printKeyValue("consistent", "no")
		return gerrors.Wrap(gerrors.ErrCodeInconsistentGraph, err, "graph %s", src.name)
	}
	printKeyValue("consistent", "yes")

	if n <= analysis.MaxExactCheegerOrder {
		rc := c.newCache(ctx, opts.noCache)
		defer rc.Close()
		v, cached, err := c.exactCheeger(ctx, rc, g)
		if err != nil {
			return err
		}
		printKeyValue("cheeger", formatRatio(v))
		printSource(cached)
	} else if opts.samples == 0 {
		printWarning("%d nodes exceed the exact Cheeger limit of %d; use --samples for a bound", n, analysis.MaxExactCheegerOrder)
	}

	if opts.samples > 0 {
		prog := newProgress(logger)
		//nolint:staticcheck // sampled bound on request
		bound, _ := analysis.CheegerUpperBound(g, random.New(opts.seed), opts.samples,
			analysis.WithLogger(logger), analysis.WithHooks(c.hooks))
		printKeyValue("cheeger <=", formatRatio(bound))
		printDetail("%d sampled subsets, seed %d", opts.samples, opts.seed)
		prog.done("Sampled Cheeger bound")
	}
	return nil
}

// exactCheeger returns the exact Cheeger constant of g, consulting rc when
// g has a graph6 form. Graphs with self-loops are always computed.
func (c *CLI) exactCheeger(ctx context.Context, rc *resultCache, g graph.Graph) (value float64, cached bool, err error) {
	form, encErr := graphio.EncodeGraph6(g)
	key := ""
	if encErr == nil {
		key = rc.keys.CheegerKey(form)
		data, hit, err := rc.Get(ctx, key)
		if err != nil {
			loggerFromContext(ctx).Warn("cache read failed", "err", err)
		}
		if hit {
			if v, err := strconv.ParseFloat(string(data), 64); err == nil {
				return v, true, nil
			}
		}
	}

	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	v, ok := analysis.ExactCheeger(g, analysis.WithLogger(logger), analysis.WithHooks(c.hooks))
	if !ok {
		n, _ := g.Order()
		return 0, false, gerrors.Wrap(gerrors.ErrCodeInfeasible,
			&gerrors.InfeasibleError{Analysis: "cheeger", Order: n, Limit: analysis.MaxExactCheegerOrder},
			"exact Cheeger search refused")
	}
	prog.done("Computed exact Cheeger constant")

	if key != "" {
		data := strconv.FormatFloat(v, 'g', -1, 64)
		if err := rc.Set(ctx, key, []byte(data), c.cfg.Cache.TTL.Duration); err != nil {
			loggerFromContext(ctx).Warn("cache write failed", "err", err)
		}
	}
	return v, false, nil
}

func formatRatio(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
