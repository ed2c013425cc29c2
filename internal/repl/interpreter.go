package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/sanjoy/graphs/pkg/analysis"
	gerrors "github.com/sanjoy/graphs/pkg/errors"
	"github.com/sanjoy/graphs/pkg/graph"
	"github.com/sanjoy/graphs/pkg/graphio"
	"github.com/sanjoy/graphs/pkg/observability"
	"github.com/sanjoy/graphs/pkg/random"
	"github.com/sanjoy/graphs/pkg/render/dot"
)

// DefaultSamples is the number of random subsets "cheeger NAME sampled"
// draws when no count is given.
const DefaultSamples = 1000

// Config configures an [Interpreter]. Zero fields take defaults.
type Config struct {
	Seed      uint32     // seed for "random" without an explicit one; default 1
	MemoSize  int        // Cheeger results remembered; default 128
	OutputDir string     // directory for viz and save; default "."
	Format    dot.Format // image format for viz; default svg
	Logger    *log.Logger
	Hooks     observability.AnalysisHooks
}

// Interpreter holds the named graphs of one session. It is not safe for
// concurrent use.
type Interpreter struct {
	cfg     Config
	session uuid.UUID
	logger  *log.Logger
	graphs  map[string]graph.Graph
	memo    *lru.Cache[string, float64]
}

// New creates an interpreter with an empty namespace.
func New(cfg Config) (*Interpreter, error) {
	if cfg.Seed == 0 {
		cfg.Seed = random.DefaultSeed
	}
	if cfg.MemoSize <= 0 {
		cfg.MemoSize = 128
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.Format == "" {
		cfg.Format = dot.FormatSVG
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Hooks == nil {
		cfg.Hooks = observability.NoopAnalysisHooks{}
	}

	memo, err := lru.New[string, float64](cfg.MemoSize)
	if err != nil {
		return nil, fmt.Errorf("create memo: %w", err)
	}
	session := uuid.New()
	return &Interpreter{
		cfg:     cfg,
		session: session,
		logger:  cfg.Logger.With("session", session.String()[:8]),
		graphs:  make(map[string]graph.Graph),
		memo:    memo,
	}, nil
}

// Session returns the identifier of this interpreter's session.
func (in *Interpreter) Session() uuid.UUID { return in.session }

// Graph returns the graph bound to name.
func (in *Interpreter) Graph(name string) (graph.Graph, bool) {
	g, ok := in.graphs[name]
	return g, ok
}

// Names returns the bound names in sorted order.
func (in *Interpreter) Names() []string {
	names := make([]string, 0, len(in.graphs))
	for name := range in.graphs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Run reads commands from r until end of input, "quit" or "exit", writing a
// "> " prompt before each line and results to w. Command errors are printed
// as "Error: ..." and do not stop the loop. Run returns ctx.Err() when ctx
// ends first.
func (in *Interpreter) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(w, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return scanner.Err()
		}
		quit, err := in.Exec(ctx, scanner.Text(), w)
		if err != nil {
			in.logger.Debug("command failed", "line", scanner.Text(), "code", gerrors.GetCode(err))
			fmt.Fprintf(w, "Error: %s\n", gerrors.UserMessage(err))
		}
		if quit {
			return nil
		}
	}
}

// Exec runs a single command line, writing any output to w. It reports quit
// when the line asks to end the session. Blank lines and lines starting with
// '#' are ignored.
func (in *Interpreter) Exec(ctx context.Context, line string, w io.Writer) (quit bool, err error) {
	words := strings.Fields(line)
	if len(words) == 0 || strings.HasPrefix(words[0], "#") {
		return false, nil
	}
	if len(words) >= 2 && words[1] == "=" {
		return false, in.assign(words[0], words[2:])
	}

	switch words[0] {
	case "quit", "exit":
		return true, nil
	case "help":
		in.help(w)
		return false, nil
	case "list":
		for _, name := range in.Names() {
			n, _ := in.graphs[name].Order()
			fmt.Fprintf(w, "%s\t%d nodes\n", name, n)
		}
		return false, nil
	case "info":
		return false, in.withGraph(words, 1, func(name string, g graph.Graph, _ []string) error {
			return in.info(w, name, g)
		})
	case "cheeger":
		return false, in.withGraph(words, 2, func(name string, g graph.Graph, rest []string) error {
			return in.cheeger(w, name, g, rest)
		})
	case "dot":
		return false, in.withGraph(words, 1, func(name string, g graph.Graph, _ []string) error {
			return dot.Write(w, name, g)
		})
	case "graph6":
		return false, in.withGraph(words, 1, func(_ string, g graph.Graph, _ []string) error {
			form, err := graphio.EncodeGraph6(g)
			if err != nil {
				return gerrors.Wrap(gerrors.ErrCodeUnsupported, err, "cannot encode as graph6")
			}
			fmt.Fprintln(w, form)
			return nil
		})
	case "viz":
		return false, in.withGraph(words, 2, func(name string, g graph.Graph, rest []string) error {
			return in.viz(ctx, w, name, g, rest)
		})
	case "save":
		if len(words) != 3 {
			return false, gerrors.New(gerrors.ErrCodeInvalidInput, `expected "save NAME FILE"`)
		}
		return false, in.withGraph(words, 2, func(_ string, g graph.Graph, rest []string) error {
			return in.save(w, g, rest[0])
		})
	}
	return false, gerrors.New(gerrors.ErrCodeInvalidInput, "%q does not match any command (try \"help\")", strings.Join(words, " "))
}

func (in *Interpreter) assign(name string, expr []string) error {
	if err := gerrors.ValidateName(name); err != nil {
		return err
	}
	g, err := Build(expr, in.Graph, in.cfg.Seed)
	if err != nil {
		return err
	}
	in.graphs[name] = g
	in.memo.Remove(name)
	n, _ := g.Order()
	in.logger.Debug("bound graph", "name", name, "expr", strings.Join(expr, " "), "order", n)
	return nil
}

// withGraph resolves words[1] and passes the remaining words (at most
// maxArgs-1 of them) to fn.
func (in *Interpreter) withGraph(words []string, maxArgs int, fn func(name string, g graph.Graph, rest []string) error) error {
	if len(words) < 2 || len(words) > maxArgs+1 {
		return gerrors.New(gerrors.ErrCodeInvalidInput, "wrong number of arguments to %s", words[0])
	}
	g, ok := in.graphs[words[1]]
	if !ok {
		return gerrors.New(gerrors.ErrCodeNotFound, "could not find constructed graph %q", words[1])
	}
	return fn(words[1], g, words[2:])
}

func (in *Interpreter) info(w io.Writer, name string, g graph.Graph) error {
	n, _ := g.Order()
	edges, _ := graph.EdgeList(g)
	fmt.Fprintf(w, "%s: %d nodes, %d edges\n", name, n, len(edges))

	if d, ok := analysis.MinDegree(g); ok {
		fmt.Fprintf(w, "  min degree: %d\n", d)
	}
	if d, ok := analysis.IsRegular(g); ok {
		fmt.Fprintf(w, "  regular:    yes, degree %d\n", d)
	} else {
		fmt.Fprintf(w, "  regular:    no\n")
	}
	if err := graph.CheckConsistency(g); err != nil {
		fmt.Fprintf(w, "  consistent: no\n")
		return gerrors.Wrap(gerrors.ErrCodeInconsistentGraph, err, "graph %s", name)
	}
	fmt.Fprintf(w, "  consistent: yes\n")
	return nil
}

// cheeger prints the exact constant, or with "sampled [N]" the deprecated
// randomized upper bound.
func (in *Interpreter) cheeger(w io.Writer, name string, g graph.Graph, rest []string) error {
	if len(rest) == 1 {
		samples := DefaultSamples
		if s, ok := strings.CutPrefix(rest[0], "sampled="); ok {
			v, err := strconv.Atoi(s)
			if err != nil || v < 1 {
				return gerrors.New(gerrors.ErrCodeInvalidInput, "invalid sample count %q", s)
			}
			samples = v
		} else if rest[0] != "sampled" {
			return gerrors.New(gerrors.ErrCodeInvalidInput, `expected "cheeger NAME [sampled[=N]]"`)
		}
		//nolint:staticcheck // the sampled bound is kept for comparison
		bound, ok := analysis.CheegerUpperBound(g, random.New(in.cfg.Seed), samples,
			analysis.WithLogger(in.logger), analysis.WithHooks(in.cfg.Hooks))
		if !ok {
			return gerrors.New(gerrors.ErrCodeInfeasible, "graph %s has no finite order", name)
		}
		fmt.Fprintf(w, "cheeger(%s) <= %s (%d samples)\n", name, formatRatio(bound), samples)
		return nil
	}

	if v, ok := in.memo.Get(name); ok {
		fmt.Fprintf(w, "cheeger(%s) = %s\n", name, formatRatio(v))
		return nil
	}
	v, ok := analysis.ExactCheeger(g, analysis.WithLogger(in.logger), analysis.WithHooks(in.cfg.Hooks))
	if !ok {
		n, finite := g.Order()
		if !finite {
			n = -1
		}
		return gerrors.Wrap(gerrors.ErrCodeInfeasible,
			&gerrors.InfeasibleError{Analysis: "cheeger", Order: n, Limit: analysis.MaxExactCheegerOrder},
			"exact search refused (try \"cheeger %s sampled\")", name)
	}
	in.memo.Add(name, v)
	fmt.Fprintf(w, "cheeger(%s) = %s\n", name, formatRatio(v))
	return nil
}

func (in *Interpreter) viz(ctx context.Context, w io.Writer, name string, g graph.Graph, rest []string) error {
	file := name + "." + string(in.cfg.Format)
	if len(rest) == 1 {
		file = rest[0]
	}
	if err := gerrors.ValidatePath(file); err != nil {
		return err
	}
	format := in.cfg.Format
	if ext := strings.TrimPrefix(filepath.Ext(file), "."); ext != "" {
		f, err := dot.ParseFormat(ext)
		if err != nil {
			return gerrors.Wrap(gerrors.ErrCodeInvalidFormat, err, "viz %s", file)
		}
		format = f
	}

	source, err := dot.ToDOT(name, g)
	if err != nil {
		return gerrors.Wrap(gerrors.ErrCodeInfeasible, err, "viz %s", name)
	}
	image, err := dot.Render(ctx, source, format)
	if err != nil {
		return gerrors.Wrap(gerrors.ErrCodeInternal, err, "could not render %s", name)
	}
	path, err := in.writeOutput(file, image)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "wrote %s\n", path)
	return nil
}

func (in *Interpreter) save(w io.Writer, g graph.Graph, file string) error {
	if err := gerrors.ValidatePath(file); err != nil {
		return err
	}
	f, err := graphio.FormatFor(file)
	if err != nil {
		return gerrors.Wrap(gerrors.ErrCodeInvalidFormat, err, "save %s", file)
	}
	var sb strings.Builder
	if err := graphio.Write(g, f, &sb); err != nil {
		return gerrors.Wrap(gerrors.ErrCodeUnsupported, err, "save %s", file)
	}
	path, err := in.writeOutput(file, []byte(sb.String()))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "wrote %s\n", path)
	return nil
}

func (in *Interpreter) writeOutput(file string, data []byte) (string, error) {
	path := filepath.Join(in.cfg.OutputDir, file)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", gerrors.Wrap(gerrors.ErrCodeInvalidPath, err, "create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", gerrors.Wrap(gerrors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return path, nil
}

func (in *Interpreter) help(w io.Writer) {
	fmt.Fprintln(w, "Build graphs:")
	for _, u := range Usage() {
		fmt.Fprintf(w, "  NAME = %s\n", u)
	}
	fmt.Fprintln(w, "Inspect graphs:")
	for _, u := range []string{
		"list",
		"info NAME",
		"cheeger NAME [sampled[=N]]",
		"dot NAME",
		"graph6 NAME",
		"viz NAME [FILE.svg|FILE.png]",
		"save NAME FILE.json|FILE.g6",
		"quit",
	} {
		fmt.Fprintf(w, "  %s\n", u)
	}
}

// formatRatio prints exact small fractions compactly.
func formatRatio(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
