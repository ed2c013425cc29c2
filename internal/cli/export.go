package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	gerrors "github.com/sanjoy/graphs/pkg/errors"
	"github.com/sanjoy/graphs/pkg/graphio"
	"github.com/sanjoy/graphs/pkg/render/dot"
)

// Export formats.
const (
	formatDOT    = "dot"
	formatGraph6 = "graph6"
	formatJSON   = "json"
	formatSVG    = "svg"
	formatPNG    = "png"
)

var exportFormats = []string{formatDOT, formatGraph6, formatJSON, formatSVG, formatPNG}

// exportOptions holds the flags of the export command.
type exportOptions struct {
	input  string
	output string
	format string
	name   string
	seed   uint32
}

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	opts := exportOptions{}

	cmd := &cobra.Command{
		Use:   "export [constructor args...]",
		Short: "Write a graph as DOT, graph6, JSON, SVG or PNG",
		Long: `Export builds a graph from a constructor expression, or reads one with
--input, and writes it in another format. Without --format the format
follows the extension of --output; without --output DOT goes to stdout.`,
		Example: `  graphs export ring 6
  graphs export complete_bipartite 3 4 -o k34.svg
  graphs export random 12 3 7 connected -o r.g6
  graphs export --input r.g6 -f json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				opts.seed = c.cfg.Seed
			}
			return c.runExport(cmd.Context(), cmd.OutOrStdout(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "read the graph from a .json or .g6 file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: "+strings.Join(exportFormats, ", "))
	cmd.Flags().StringVar(&opts.name, "name", dot.DefaultName, "graph name in DOT output")
	cmd.Flags().Uint32Var(&opts.seed, "seed", 1, "seed for random graphs")

	return cmd
}

// exportFormat picks the explicit format, else the one implied by path,
// else DOT.
func exportFormat(format, path string) (string, error) {
	if format == "" && path != "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
		if format == "g6" {
			format = formatGraph6
		}
		if format == "gv" {
			format = formatDOT
		}
	}
	if format == "" {
		format = formatDOT
	}
	if err := gerrors.ValidateFormat(format, exportFormats...); err != nil {
		return "", err
	}
	return format, nil
}

func (c *CLI) runExport(ctx context.Context, stdout io.Writer, args []string, opts exportOptions) error {
	format, err := exportFormat(opts.format, opts.output)
	if err != nil {
		return err
	}
	src, err := loadGraph(args, opts.input, opts.seed)
	if err != nil {
		return err
	}
	prog := newProgress(loggerFromContext(ctx))

	var buf bytes.Buffer
	switch format {
	case formatDOT:
		err = dot.Write(&buf, opts.name, src.g)
	case formatGraph6:
		err = graphio.Write(src.g, graphio.FormatGraph6, &buf)
	case formatJSON:
		err = graphio.Write(src.g, graphio.FormatJSON, &buf)
	case formatSVG, formatPNG:
		var source string
		source, err = dot.ToDOT(opts.name, src.g)
		if err == nil {
			var image []byte
			image, err = dot.Render(ctx, source, dot.Format(format))
			buf.Write(image)
		}
	}
	if err != nil {
		return gerrors.Wrap(gerrors.ErrCodeUnsupported, err, "cannot export %s as %s", src.name, format)
	}

	if opts.output == "" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(opts.output, buf.Bytes(), 0o644); err != nil {
		return gerrors.Wrap(gerrors.ErrCodeInvalidPath, err, "write %s", opts.output)
	}
	prog.done("Exported " + src.name)
	printSuccess("Exported %s", format)
	printFile(opts.output)
	return nil
}
