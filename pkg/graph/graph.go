package graph

import (
	"cmp"
	"fmt"
	"iter"
)

// Node identifies a vertex. Valid nodes of a graph with order n are [0, n).
type Node int

// Edge is an unordered pair of nodes. U == V denotes a self-loop.
type Edge struct {
	U, V Node
}

// Other returns the endpoint of e that is not n. For a self-loop it returns n.
// The result is unspecified when n is not an endpoint of e.
func (e Edge) Other(n Node) Node {
	if e.U == n {
		return e.V
	}
	return e.U
}

// Has reports whether n is an endpoint of e.
func (e Edge) Has(n Node) bool { return e.U == n || e.V == n }

// IsLoop reports whether e is a self-loop.
func (e Edge) IsLoop() bool { return e.U == e.V }

// Reversed returns e with its endpoints swapped.
func (e Edge) Reversed() Edge { return Edge{U: e.V, V: e.U} }

// Canonical returns e oriented with the smaller endpoint first.
func (e Edge) Canonical() Edge {
	if e.V < e.U {
		return e.Reversed()
	}
	return e
}

// String formats e as "(u, v)".
func (e Edge) String() string { return fmt.Sprintf("(%d, %d)", e.U, e.V) }

// Compare orders edges lexicographically by (U, V). It is suitable for
// [slices.SortFunc] and [slices.BinarySearchFunc].
func Compare(a, b Edge) int {
	if c := cmp.Compare(a.U, b.U); c != 0 {
		return c
	}
	return cmp.Compare(a.V, b.V)
}

// =============================================================================
// Graph Contract
// =============================================================================

// Graph is an undirected graph traversed lazily.
//
// Order reports the number of nodes, or finite == false when the graph has no
// finite bound. IncidentEdges yields every edge with n as an endpoint, each
// self-loop once; edges may be oriented either way. IncidentEdges panics when
// n is outside [0, order).
type Graph interface {
	Order() (n int, finite bool)
	IncidentEdges(n Node) iter.Seq[Edge]
}

// NodeLister is implemented by graphs that enumerate nodes themselves instead
// of relying on the default 0..order-1 sequence.
type NodeLister interface {
	Nodes() iter.Seq[Node]
}

// EdgeLister is implemented by graphs that enumerate their undirected edges
// themselves. Each edge must be yielded exactly once.
type EdgeLister interface {
	Edges() iter.Seq[Edge]
}

// ConsistencyChecker is implemented by graphs that can validate their own
// backing store. [CheckConsistency] runs it before the generic check.
type ConsistencyChecker interface {
	CheckConsistency() error
}

// =============================================================================
// Derived Traversals
// =============================================================================

// Nodes returns the nodes of g. Unless g implements [NodeLister], this is
// 0..order-1 for finite graphs and 0, 1, 2, ... otherwise.
func Nodes(g Graph) iter.Seq[Node] {
	if nl, ok := g.(NodeLister); ok {
		return nl.Nodes()
	}
	n, finite := g.Order()
	return func(yield func(Node) bool) {
		for i := 0; !finite || i < n; i++ {
			if !yield(Node(i)) {
				return
			}
		}
	}
}

// Edges returns every undirected edge of g exactly once. Unless g implements
// [EdgeLister], edges are discovered by walking [Nodes] and keeping an edge
// (n, m) seen at node n only when m >= n. Yielded edges are oriented
// (n, m).
func Edges(g Graph) iter.Seq[Edge] {
	if el, ok := g.(EdgeLister); ok {
		return el.Edges()
	}
	return func(yield func(Edge) bool) {
		for n := range Nodes(g) {
			for e := range g.IncidentEdges(n) {
				m := e.Other(n)
				if m < n {
					continue
				}
				if !yield(Edge{U: n, V: m}) {
					return
				}
			}
		}
	}
}

// Degree returns the number of edges incident to n. A self-loop counts once.
func Degree(g Graph, n Node) int {
	d := 0
	for range g.IncidentEdges(n) {
		d++
	}
	return d
}

// EdgeList materializes the edges of a finite graph in [Edges] order.
// It returns false without traversing anything when g has no finite bound.
func EdgeList(g Graph) ([]Edge, bool) {
	if _, finite := g.Order(); !finite {
		return nil, false
	}
	var edges []Edge
	for e := range Edges(g) {
		edges = append(edges, e)
	}
	return edges, true
}

// mustContain panics when n is not a node of a graph with the given order.
func mustContain(order int, n Node) {
	if n < 0 || int(n) >= order {
		panic(fmt.Sprintf("graph: node %d out of range [0, %d)", n, order))
	}
}
