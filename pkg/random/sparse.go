package random

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/sanjoy/graphs/pkg/graph"
)

// Option configures graph generation.
type Option func(*options)

type options struct {
	logger *log.Logger
}

// WithLogger sends generation diagnostics to l at debug level.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// SparseGraph draws a random graph on order nodes whose expected degree is
// about averageDegree.
//
// Pairs are visited as i = 0..order-1, j = i+1..order-1, and each draws
// exactly one Intn(gen, order); the pair becomes an edge when the draw is
// below averageDegree. When ensureConnected is set and node i gained no edge
// to a larger node, one extra draw picks a partner for i, which can be i
// itself. The result depends only on the state of gen and the arguments.
//
// SparseGraph panics when order or averageDegree is negative.
func SparseGraph(gen BitGenerator, order, averageDegree int, ensureConnected bool, opts ...Option) *graph.Concrete {
	if order < 0 || averageDegree < 0 {
		panic(fmt.Sprintf("random: invalid sparse graph parameters order=%d degree=%d", order, averageDegree))
	}
	o := buildOptions(opts)

	var edges []graph.Edge
	for i := range order {
		added := false
		for j := i + 1; j < order; j++ {
			if Intn(gen, order) < averageDegree {
				e := graph.Edge{U: graph.Node(i), V: graph.Node(j)}
				edges = append(edges, e)
				o.logger.Debug("adding edge", "edge", e)
				added = true
			}
		}
		if !added && ensureConnected {
			e := graph.Edge{U: graph.Node(i), V: graph.Node(Intn(gen, order))}
			edges = append(edges, e)
			o.logger.Debug("adding connecting edge", "edge", e, "loop", e.IsLoop())
		}
	}
	return graph.New(order, edges)
}

// NewSparseGraph is [SparseGraph] driven by a fresh [Source] seeded with
// seed. Equal arguments always produce equal graphs.
func NewSparseGraph(seed uint32, order, averageDegree int, ensureConnected bool, opts ...Option) *graph.Concrete {
	return SparseGraph(New(seed), order, averageDegree, ensureConnected, opts...)
}
