// Package graph provides the lazily traversed undirected graph abstraction
// shared by every other package in this module, plus an immutable concrete
// store built from an edge list.
//
// # Overview
//
// A [Graph] only has to answer two questions: how many nodes it has (possibly
// without a finite bound) and which edges touch a given node. Everything else
// ([Nodes], [Edges], [CheckConsistency], [Degree], [EdgeList]) is derived from
// those two answers, so implementations range from the sorted adjacency store
// returned by [New] to views that compute their edges on demand, such as the
// replacement product in package zoo.
//
// Nodes are integers in [0, order). Edges are unordered pairs; self-loops are
// allowed and parallel edges collapse.
//
// # Lazy Sequences
//
// All traversal is expressed with range-over-func iterators:
//
//	g := graph.New(3, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}})
//	for e := range graph.Edges(g) {
//	    fmt.Println(e)
//	}
//
// A sequence is obtained fresh from its source every time it is requested;
// ranging over the same [iter.Seq] again restarts it from the beginning.
// Breaking out of a range loop stops the producer, which is what makes
// traversal of graphs without a finite bound safe.
//
// # Edge Derivation
//
// The default [Edges] walks nodes in order and yields an edge (n, m) while
// visiting n only when m >= n, so every undirected edge appears exactly once,
// oriented smaller endpoint first. Implementations that can do better may
// implement [EdgeLister].
//
// # Consistency
//
// Adjacency must be symmetric: an edge reported as incident to u must also be
// reported as incident to v. [CheckConsistency] verifies this for any graph
// and returns a [*ConsistencyError] listing every mismatched edge. It never
// panics on an inconsistent graph.
//
// # Preconditions
//
// Asking for the incident edges of a node outside [0, order), or building a
// concrete graph from an edge with an out-of-range endpoint, is a programming
// error and panics.
package graph
