package zoo

import (
	"fmt"
	"iter"

	"github.com/sanjoy/graphs/pkg/graph"
)

// Complete returns the complete graph on k nodes. With selfLoops set every
// node also gets a loop.
func Complete(k int, selfLoops bool) *graph.Concrete {
	mustNotBeNegative("complete graph size", k)
	var edges []graph.Edge
	for i := range k {
		start := i + 1
		if selfLoops {
			start = i
		}
		for j := start; j < k; j++ {
			edges = append(edges, graph.Edge{U: graph.Node(i), V: graph.Node(j)})
		}
	}
	return graph.New(k, edges)
}

// Unconnected returns k isolated nodes.
func Unconnected(k int) *graph.Concrete {
	mustNotBeNegative("unconnected graph size", k)
	return graph.New(k, nil)
}

// CompleteBipartite returns K(l,r). Left nodes are [0, l), right nodes are
// [l, l+r).
func CompleteBipartite(l, r int) *graph.Concrete {
	mustNotBeNegative("left side", l)
	mustNotBeNegative("right side", r)
	edges := make([]graph.Edge, 0, l*r)
	for i := range l {
		for j := range r {
			edges = append(edges, graph.Edge{U: graph.Node(i), V: graph.Node(l + j)})
		}
	}
	return graph.New(l+r, edges)
}

// Ring returns the cycle 0-1-...-(n-1)-0. Ring(1) is a single self-loop and
// Ring(2) a single edge. Ring panics when n < 1.
func Ring(n int) *graph.Concrete {
	if n < 1 {
		panic(fmt.Sprintf("zoo: ring needs at least one node, got %d", n))
	}
	edges := make([]graph.Edge, 0, n)
	for i := range n - 1 {
		edges = append(edges, graph.Edge{U: graph.Node(i), V: graph.Node(i + 1)})
	}
	edges = append(edges, graph.Edge{U: graph.Node(n - 1), V: 0})
	return graph.New(n, edges)
}

func mustNotBeNegative(what string, n int) {
	if n < 0 {
		panic(fmt.Sprintf("zoo: negative %s %d", what, n))
	}
}

// =============================================================================
// Ray
// =============================================================================

// Ray is the one-way infinite path 0-1-2-... It has no finite bound, so
// finite-only analyses report no result for it.
type Ray struct{}

// Order reports that a Ray is unbounded.
func (Ray) Order() (int, bool) { return 0, false }

// IncidentEdges yields (n, n-1) for n > 0, then (n, n+1).
func (Ray) IncidentEdges(n graph.Node) iter.Seq[graph.Edge] {
	if n < 0 {
		panic(fmt.Sprintf("zoo: ray node %d out of range", n))
	}
	return func(yield func(graph.Edge) bool) {
		if n > 0 && !yield(graph.Edge{U: n, V: n - 1}) {
			return
		}
		yield(graph.Edge{U: n, V: n + 1})
	}
}

var _ graph.Graph = Ray{}
