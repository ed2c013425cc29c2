package cli

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/sanjoy/graphs/internal/repl"
	gerrors "github.com/sanjoy/graphs/pkg/errors"
	"github.com/sanjoy/graphs/pkg/graph"
	"github.com/sanjoy/graphs/pkg/graphio"
)

// graphSource is how a command obtained its graph.
type graphSource struct {
	g    graph.Graph
	name string
}

// loadGraph builds the graph named by a constructor expression, or reads it
// from input when input is set. Graph names inside an expression (the
// operands of replacement_product) are read as graph files.
func loadGraph(args []string, input string, seed uint32) (*graphSource, error) {
	switch {
	case input != "" && len(args) > 0:
		return nil, gerrors.New(gerrors.ErrCodeInvalidInput, "give either a constructor expression or --input, not both")
	case input != "":
		g, err := graphio.Import(input)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, gerrors.Wrap(gerrors.ErrCodeNotFound, err, "read %s", input)
		}
		if errors.Is(err, graphio.ErrTooLarge) {
			return nil, gerrors.Wrap(gerrors.ErrCodeInfeasible, err, "read %s", input)
		}
		if err != nil {
			return nil, gerrors.Wrap(gerrors.ErrCodeInvalidFormat, err, "read %s", input)
		}
		return &graphSource{g: g, name: input}, nil
	case len(args) == 0:
		return nil, gerrors.New(gerrors.ErrCodeInvalidInput, "missing graph constructor (one of: %s)", strings.Join(repl.Usage(), "; "))
	}

	g, err := repl.Build(args, importLookup, seed)
	if err != nil {
		return nil, err
	}
	return &graphSource{g: g, name: strings.Join(args, " ")}, nil
}

func importLookup(path string) (graph.Graph, bool) {
	g, err := graphio.Import(path)
	if err != nil {
		return nil, false
	}
	return g, true
}
