package graph

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrUnbounded is returned by [CheckConsistency] for graphs without a finite
// bound, whose adjacency cannot be checked exhaustively.
var ErrUnbounded = errors.New("graph has no finite bound")

// Mismatch is an edge reported in the adjacency of Node without a matching
// entry on the other side.
type Mismatch struct {
	Node Node
	Edge Edge
}

// ConsistencyError lists every asymmetry found in a graph.
//
// Dangling holds edges found in a node's adjacency but not in the edge list
// (or, for a concrete store, without a stored mirror). Orphaned holds edges
// present in the edge list (or backing store) that no node's adjacency
// accounts for.
type ConsistencyError struct {
	Dangling []Mismatch
	Orphaned []Edge
}

func (e *ConsistencyError) empty() bool {
	return len(e.Dangling) == 0 && len(e.Orphaned) == 0
}

// Error formats one line per mismatched edge.
func (e *ConsistencyError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "inconsistent graph: %d mismatched edges", len(e.Dangling)+len(e.Orphaned))
	for _, m := range e.Dangling {
		fmt.Fprintf(&b, "\n  edge %s found in adjacency list of node %d but not in edge list", m.Edge, m.Node)
	}
	for _, o := range e.Orphaned {
		fmt.Fprintf(&b, "\n  edge %s found in edge list but not in any adjacency list", o)
	}
	return b.String()
}

// CheckConsistency verifies that the adjacency of g is symmetric and agrees
// with [Edges]. It returns nil for a consistent graph, a *ConsistencyError
// describing every mismatch otherwise, and [ErrUnbounded] for graphs without
// a finite bound.
//
// When g implements [ConsistencyChecker], its own check runs first and any
// error it reports is returned as is.
func CheckConsistency(g Graph) error {
	if _, finite := g.Order(); !finite {
		return ErrUnbounded
	}
	if cc, ok := g.(ConsistencyChecker); ok {
		if err := cc.CheckConsistency(); err != nil {
			return err
		}
	}

	pending := make(map[Edge]struct{})
	for e := range Edges(g) {
		pending[e] = struct{}{}
		pending[e.Reversed()] = struct{}{}
	}

	var errs ConsistencyError
	for n := range Nodes(g) {
		for e := range g.IncidentEdges(n) {
			if !e.Has(n) {
				errs.Dangling = append(errs.Dangling, Mismatch{Node: n, Edge: e})
				continue
			}
			oriented := Edge{U: n, V: e.Other(n)}
			if _, ok := pending[oriented]; !ok {
				errs.Dangling = append(errs.Dangling, Mismatch{Node: n, Edge: oriented})
				continue
			}
			delete(pending, oriented)
		}
	}
	errs.Orphaned = slices.SortedFunc(maps.Keys(pending), Compare)

	if errs.empty() {
		return nil
	}
	return &errs
}
