package zoo

import (
	"errors"
	"fmt"
	"iter"

	"github.com/sanjoy/graphs/pkg/analysis"
	"github.com/sanjoy/graphs/pkg/graph"
)

var (
	// ErrNotFinite is returned by [ValidateReplacementProduct] when either
	// input has no finite bound.
	ErrNotFinite = errors.New("graph is not finite")

	// ErrNotRegular is returned by [ValidateReplacementProduct] when either
	// input is not regular.
	ErrNotRegular = errors.New("graph is not regular")

	// ErrDegreeMismatch is returned by [ValidateReplacementProduct] when the
	// outer degree differs from the inner order.
	ErrDegreeMismatch = errors.New("outer degree must equal inner order")
)

// Product is the replacement product of a regular outer graph and a regular
// inner graph whose order equals the outer degree. Every outer node o is
// replaced by a copy of the inner graph; node (o, i) is numbered
// o*innerOrder + i. Besides its inner edges, (o, i) has one long edge: the
// i-th edge of o in the outer graph leads to some o', and (o, i) connects to
// (o', i'') where i'' is the position of the edge back to o among the edges
// of o'.
//
// Product stores no edges; every traversal is computed from the two graphs.
type Product struct {
	outer, inner           graph.Graph
	outerOrder, innerOrder int
}

// ValidateReplacementProduct reports why outer and inner cannot form a
// replacement product, or nil when they can.
func ValidateReplacementProduct(outer, inner graph.Graph) error {
	for _, side := range []struct {
		name string
		g    graph.Graph
	}{{"outer", outer}, {"inner", inner}} {
		if _, finite := side.g.Order(); !finite {
			return fmt.Errorf("%s: %w", side.name, ErrNotFinite)
		}
		if _, ok := analysis.IsRegular(side.g); !ok {
			return fmt.Errorf("%s: %w", side.name, ErrNotRegular)
		}
	}
	degree, _ := analysis.IsRegular(outer)
	innerOrder, _ := inner.Order()
	if degree != innerOrder {
		return fmt.Errorf("%w: outer degree %d, inner order %d", ErrDegreeMismatch, degree, innerOrder)
	}
	return nil
}

// ReplacementProduct returns the lazy replacement product of outer and inner.
// Both graphs must be finite and regular and the outer degree must equal the
// inner order; otherwise ReplacementProduct panics.
func ReplacementProduct(outer, inner graph.Graph) *Product {
	if err := ValidateReplacementProduct(outer, inner); err != nil {
		panic("zoo: replacement product: " + err.Error())
	}
	outerOrder, _ := outer.Order()
	innerOrder, _ := inner.Order()
	return &Product{outer: outer, inner: inner, outerOrder: outerOrder, innerOrder: innerOrder}
}

// Order returns outerOrder * innerOrder.
func (p *Product) Order() (int, bool) { return p.outerOrder * p.innerOrder, true }

// Split returns the outer and inner components of n.
func (p *Product) Split(n graph.Node) (outer, inner graph.Node) {
	k := graph.Node(p.innerOrder)
	return n / k, n % k
}

// Join packs an (outer, inner) pair into a product node.
func (p *Product) Join(outer, inner graph.Node) graph.Node {
	return outer*graph.Node(p.innerOrder) + inner
}

// IncidentEdges yields the inner edges of n, then its long edge.
func (p *Product) IncidentEdges(n graph.Node) iter.Seq[graph.Edge] {
	if n < 0 || int(n) >= p.outerOrder*p.innerOrder {
		panic(fmt.Sprintf("zoo: node %d out of range [0, %d)", n, p.outerOrder*p.innerOrder))
	}
	o, i := p.Split(n)
	return func(yield func(graph.Edge) bool) {
		for e := range p.inner.IncidentEdges(i) {
			if !yield(graph.Edge{U: n, V: p.Join(o, e.Other(i))}) {
				return
			}
		}
		yield(graph.Edge{U: n, V: p.longNeighbor(o, i)})
	}
}

// longNeighbor follows the i-th outer edge of o to o' and returns the product
// node of o' whose inner index is the position of o among the edges of o'.
func (p *Product) longNeighbor(o, i graph.Node) graph.Node {
	far := nth(p.outer.IncidentEdges(o), int(i)).Other(o)
	back := 0
	for e := range p.outer.IncidentEdges(far) {
		if e.Has(o) {
			break
		}
		back++
	}
	return p.Join(far, graph.Node(back))
}

// nth returns the element at index k of seq. The index is always in range for
// regular graphs whose degree matches the inner order.
func nth(seq iter.Seq[graph.Edge], k int) graph.Edge {
	idx := 0
	for e := range seq {
		if idx == k {
			return e
		}
		idx++
	}
	panic(fmt.Sprintf("zoo: edge index %d out of range", k))
}

var _ graph.Graph = (*Product)(nil)
