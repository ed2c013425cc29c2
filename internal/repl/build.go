package repl

import (
	"errors"
	"strconv"

	gerrors "github.com/sanjoy/graphs/pkg/errors"
	"github.com/sanjoy/graphs/pkg/graph"
	"github.com/sanjoy/graphs/pkg/graphio"
	"github.com/sanjoy/graphs/pkg/random"
	"github.com/sanjoy/graphs/pkg/zoo"
)

// Limits on graphs built from expressions.
const (
	MaxBuildOrder = graphio.MaxOrder
	MaxBuildEdges = 1 << 22
)

// Lookup resolves a graph name to a previously built graph.
type Lookup func(name string) (graph.Graph, bool)

// constructor builds a graph from the words following its keyword.
type constructor struct {
	usage string
	build func(args []string, lookup Lookup, seed uint32) (graph.Graph, error)
}

var constructors = map[string]constructor{
	"complete": {
		usage: "complete K [loops]",
		build: func(args []string, _ Lookup, _ uint32) (graph.Graph, error) {
			if len(args) < 1 || len(args) > 2 || (len(args) == 2 && args[1] != "loops") {
				return nil, errUsage
			}
			k, err := parseSize(args[0])
			if err != nil {
				return nil, err
			}
			if err := checkEdges(k * (k + 1) / 2); err != nil {
				return nil, err
			}
			return zoo.Complete(k, len(args) == 2), nil
		},
	},
	"unconnected": {
		usage: "unconnected K",
		build: func(args []string, _ Lookup, _ uint32) (graph.Graph, error) {
			if len(args) != 1 {
				return nil, errUsage
			}
			k, err := parseSize(args[0])
			if err != nil {
				return nil, err
			}
			return zoo.Unconnected(k), nil
		},
	},
	"complete_bipartite": {
		usage: "complete_bipartite L R",
		build: func(args []string, _ Lookup, _ uint32) (graph.Graph, error) {
			if len(args) != 2 {
				return nil, errUsage
			}
			l, err := parseSize(args[0])
			if err != nil {
				return nil, err
			}
			r, err := parseSize(args[1])
			if err != nil {
				return nil, err
			}
			if l+r > MaxBuildOrder {
				return nil, gerrors.New(gerrors.ErrCodeInfeasible, "order %d exceeds %d", l+r, MaxBuildOrder)
			}
			if err := checkEdges(l * r); err != nil {
				return nil, err
			}
			return zoo.CompleteBipartite(l, r), nil
		},
	},
	"ring": {
		usage: "ring N",
		build: func(args []string, _ Lookup, _ uint32) (graph.Graph, error) {
			if len(args) != 1 {
				return nil, errUsage
			}
			n, err := parseSize(args[0])
			if err != nil {
				return nil, err
			}
			if n < 1 {
				return nil, gerrors.New(gerrors.ErrCodeInvalidInput, "a ring needs at least one node")
			}
			return zoo.Ring(n), nil
		},
	},
	"replacement_product": {
		usage: "replacement_product OUTER INNER",
		build: buildReplacementProduct,
	},
	"random": {
		usage: "random ORDER AVGDEG [SEED] [connected]",
		build: buildRandom,
	},
}

// errUsage is replaced by the constructor's usage line in Build.
var errUsage = errors.New("usage")

// Build constructs a graph from a constructor expression split into words,
// for example ["ring", "5"] or ["replacement_product", "a", "b"]. lookup
// resolves graph names; seed is used by "random" when the expression gives
// none. Failures are *errors.Error values.
func Build(words []string, lookup Lookup, seed uint32) (graph.Graph, error) {
	if len(words) == 0 {
		return nil, gerrors.New(gerrors.ErrCodeInvalidInput, "missing graph constructor")
	}
	c, ok := constructors[words[0]]
	if !ok {
		return nil, gerrors.New(gerrors.ErrCodeInvalidInput, "unknown graph constructor %q", words[0])
	}
	g, err := c.build(words[1:], lookup, seed)
	if errors.Is(err, errUsage) {
		return nil, gerrors.New(gerrors.ErrCodeInvalidInput, "expected %q", c.usage)
	}
	return g, err
}

func buildReplacementProduct(args []string, lookup Lookup, _ uint32) (graph.Graph, error) {
	if len(args) != 2 {
		return nil, errUsage
	}
	var sides [2]graph.Graph
	for i, name := range args {
		g, ok := lookup(name)
		if !ok {
			return nil, gerrors.New(gerrors.ErrCodeNotFound, "no graph named %q", name)
		}
		sides[i] = g
	}

	err := zoo.ValidateReplacementProduct(sides[0], sides[1])
	switch {
	case err == nil:
		return zoo.ReplacementProduct(sides[0], sides[1]), nil
	case errors.Is(err, zoo.ErrNotRegular):
		return nil, gerrors.Wrap(gerrors.ErrCodeNotRegular, err, "cannot form replacement product")
	case errors.Is(err, zoo.ErrNotFinite):
		return nil, gerrors.Wrap(gerrors.ErrCodeInfeasible, err, "cannot form replacement product")
	default:
		return nil, gerrors.Wrap(gerrors.ErrCodeInvalidInput, err, "cannot form replacement product")
	}
}

func buildRandom(args []string, _ Lookup, seed uint32) (graph.Graph, error) {
	connected := len(args) > 0 && args[len(args)-1] == "connected"
	if connected {
		args = args[:len(args)-1]
	}
	if len(args) < 2 || len(args) > 3 {
		return nil, errUsage
	}
	order, err := parseSize(args[0])
	if err != nil {
		return nil, err
	}
	avg, err := parseSize(args[1])
	if err != nil {
		return nil, err
	}
	if err := checkEdges(order * order / 2); err != nil {
		return nil, err
	}
	if len(args) == 3 {
		s, err := strconv.ParseUint(args[2], 10, 32)
		if err != nil {
			return nil, gerrors.New(gerrors.ErrCodeInvalidInput, "invalid seed %q", args[2])
		}
		seed = uint32(s)
	}
	return random.NewSparseGraph(seed, order, avg, connected), nil
}

// parseSize parses a non-negative integer no larger than MaxBuildOrder.
func parseSize(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, gerrors.New(gerrors.ErrCodeInvalidInput, "expected a number, got %q", s)
	}
	if n < 0 {
		return 0, gerrors.New(gerrors.ErrCodeInvalidInput, "expected a non-negative number, got %d", n)
	}
	if n > MaxBuildOrder {
		return 0, gerrors.New(gerrors.ErrCodeInfeasible, "%d exceeds %d", n, MaxBuildOrder)
	}
	return n, nil
}

func checkEdges(n int) error {
	if n > MaxBuildEdges {
		return gerrors.New(gerrors.ErrCodeInfeasible, "%d edges exceed %d", n, MaxBuildEdges)
	}
	return nil
}

// Usage lists every constructor expression.
func Usage() []string {
	out := make([]string, 0, len(constructors))
	for _, name := range constructorOrder {
		out = append(out, constructors[name].usage)
	}
	return out
}

var constructorOrder = []string{"complete", "unconnected", "complete_bipartite", "ring", "replacement_product", "random"}
