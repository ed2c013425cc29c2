package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sanjoy/graphs/internal/repl"
	"github.com/sanjoy/graphs/pkg/render/dot"
)

// replOptions holds the flags of the repl command.
type replOptions struct {
	metricsAddr string
	outputDir   string
	format      string
	seed        uint32
	memo        int
}

// replCommand creates the repl command.
func (c *CLI) replCommand() *cobra.Command {
	opts := replOptions{}

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive graph interpreter",
		Long: `Repl reads interpreter commands from stdin, one per line. Type "help" for
the list of constructors and commands, "quit" to leave.

With --metrics-addr the session's Cheeger searches are exported as
Prometheus metrics at http://ADDR/metrics while it runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			opts.metricsAddr = c.metricsAddr(cmd, opts.metricsAddr)
			if !flags.Changed("output-dir") {
				opts.outputDir = c.cfg.Render.OutputDir
			}
			if !flags.Changed("format") {
				opts.format = c.cfg.Render.Format
			}
			if !flags.Changed("seed") {
				opts.seed = c.cfg.Seed
			}
			if !flags.Changed("memo") {
				opts.memo = c.cfg.REPL.Memo
			}
			return c.runREPL(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}

	addMetricsFlag(cmd, &opts.metricsAddr)
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", ".", "directory for viz and save")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "svg", "image format for viz: svg or png")
	cmd.Flags().Uint32Var(&opts.seed, "seed", 1, "default seed for random graphs")
	cmd.Flags().IntVar(&opts.memo, "memo", 128, "Cheeger results remembered per session")

	return cmd
}

func (c *CLI) runREPL(ctx context.Context, in io.Reader, out io.Writer, opts replOptions) error {
	format, err := dot.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(opts.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	return c.withMetrics(ctx, opts.metricsAddr, func(ctx context.Context) error {
		logger := loggerFromContext(ctx)
		interp, err := repl.New(repl.Config{
			Seed:      opts.seed,
			MemoSize:  opts.memo,
			OutputDir: opts.outputDir,
			Format:    format,
			Logger:    logger,
			Hooks:     c.hooks,
		})
		if err != nil {
			return err
		}
		logger.Info("session started", "id", interp.Session())

		return interp.Run(ctx, in, out)
	})
}
