package graph

import (
	"fmt"
	"iter"
	"slices"
	"sort"
)

// Concrete is an immutable graph backed by a sorted list of (node, neighbor)
// pairs. Every edge is stored in both orientations, except self-loops which
// are stored once.
//
// Concrete is safe for concurrent readers.
type Concrete struct {
	order int
	adj   []Edge
}

// New builds a concrete graph with order nodes from edges. Duplicate edges
// (in either orientation) collapse into one. New panics when order is
// negative or an edge endpoint lies outside [0, order).
func New(order int, edges []Edge) *Concrete {
	if order < 0 {
		panic(fmt.Sprintf("graph: negative order %d", order))
	}
	adj := make([]Edge, 0, 2*len(edges))
	for _, e := range edges {
		mustContain(order, e.U)
		mustContain(order, e.V)
		adj = append(adj, e, e.Reversed())
	}
	slices.SortFunc(adj, Compare)
	return &Concrete{order: order, adj: slices.Compact(adj)}
}

// Order returns the node count. A concrete graph is always finite.
func (g *Concrete) Order() (int, bool) { return g.order, true }

// IncidentEdges yields the edges of n oriented (n, neighbor) in ascending
// neighbor order.
func (g *Concrete) IncidentEdges(n Node) iter.Seq[Edge] {
	mustContain(g.order, n)
	run := g.run(n)
	return func(yield func(Edge) bool) {
		for _, e := range run {
			if !yield(e) {
				return
			}
		}
	}
}

// Neighbors returns the neighbors of n in ascending order. The returned slice
// is a copy.
func (g *Concrete) Neighbors(n Node) []Node {
	mustContain(g.order, n)
	run := g.run(n)
	out := make([]Node, len(run))
	for i, e := range run {
		out[i] = e.V
	}
	return out
}

// Size returns the number of undirected edges.
func (g *Concrete) Size() int {
	size := 0
	for _, e := range g.adj {
		if e.U <= e.V {
			size++
		}
	}
	return size
}

// run returns the contiguous slice of adj whose first coordinate is n.
func (g *Concrete) run(n Node) []Edge {
	lo := sort.Search(len(g.adj), func(i int) bool { return g.adj[i].U >= n })
	hi := sort.Search(len(g.adj), func(i int) bool { return g.adj[i].U > n })
	return g.adj[lo:hi]
}

// CheckConsistency validates the backing store: every stored pair must lie in
// range, and every (u, v) must have its mirror (v, u).
func (g *Concrete) CheckConsistency() error {
	var errs ConsistencyError
	for _, e := range g.adj {
		if e.U < 0 || int(e.U) >= g.order || e.V < 0 || int(e.V) >= g.order {
			errs.Orphaned = append(errs.Orphaned, e)
			continue
		}
		if _, found := slices.BinarySearchFunc(g.adj, e.Reversed(), Compare); !found {
			errs.Dangling = append(errs.Dangling, Mismatch{Node: e.U, Edge: e})
		}
	}
	if errs.empty() {
		return nil
	}
	return &errs
}

var (
	_ Graph              = (*Concrete)(nil)
	_ ConsistencyChecker = (*Concrete)(nil)
)
