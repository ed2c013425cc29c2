package graphio

import (
	"fmt"
	"strings"

	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding/graph6"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/sanjoy/graphs/pkg/graph"
)

// EncodeGraph6 returns the graph6 encoding of g.
func EncodeGraph6(g graph.Graph) (string, error) {
	n, finite := g.Order()
	if !finite {
		return "", ErrUnbounded
	}
	u := simple.NewUndirectedGraph()
	for i := range n {
		u.AddNode(simple.Node(i))
	}
	for e := range graph.Edges(g) {
		if e.IsLoop() {
			return "", fmt.Errorf("node %d: %w", e.U, ErrSelfLoop)
		}
		u.SetEdge(u.NewEdge(simple.Node(e.U), simple.Node(e.V)))
	}
	return string(graph6.Encode(u)), nil
}

// DecodeGraph6 parses a graph6 string. Surrounding whitespace is ignored.
func DecodeGraph6(s string) (*graph.Concrete, error) {
	g := graph6.Graph(strings.TrimSpace(s))
	if !graph6.IsValid(g) {
		return nil, fmt.Errorf("invalid graph6 string %q", s)
	}

	nodes := g.Nodes()
	order := nodes.Len()
	if order > MaxOrder {
		return nil, fmt.Errorf("graph6: order %d exceeds %d: %w", order, MaxOrder, ErrTooLarge)
	}
	var edges []graph.Edge
	for nodes.Next() {
		id := nodes.Node().ID()
		for _, m := range gonum.NodesOf(g.From(id)) {
			if m.ID() > id {
				edges = append(edges, graph.Edge{U: graph.Node(id), V: graph.Node(m.ID())})
			}
		}
	}
	return graph.New(order, edges), nil
}
