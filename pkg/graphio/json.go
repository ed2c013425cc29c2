package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/sanjoy/graphs/pkg/graph"
)

// MaxOrder is the largest order a decoded graph may declare.
const MaxOrder = 1 << 16

var (
	// ErrTooLarge is returned when a decoded graph declares more than
	// [MaxOrder] nodes.
	ErrTooLarge = errors.New("graph order too large")

	// ErrUnbounded is returned when writing a graph with no finite order.
	ErrUnbounded = errors.New("graph has no finite order")

	// ErrOutOfRange is returned when an edge endpoint lies outside
	// [0, order).
	ErrOutOfRange = errors.New("edge endpoint out of range")

	// ErrSelfLoop is returned when encoding a graph with a self-loop as
	// graph6.
	ErrSelfLoop = errors.New("graph6 cannot encode self-loops")
)

type document struct {
	Order int      `json:"order"`
	Edges [][2]int `json:"edges"`
}

// WriteJSON encodes g as indented JSON and writes it to w.
func WriteJSON(g graph.Graph, w io.Writer) error {
	n, finite := g.Order()
	if !finite {
		return ErrUnbounded
	}
	out := document{Order: n, Edges: [][2]int{}}
	for e := range graph.Edges(g) {
		out.Edges = append(out.Edges, [2]int{int(e.U), int(e.V)})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes a JSON graph from r. It does not close r.
func ReadJSON(r io.Reader) (*graph.Concrete, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if data.Order < 0 {
		return nil, fmt.Errorf("decode: negative order %d", data.Order)
	}
	if data.Order > MaxOrder {
		return nil, fmt.Errorf("decode: order %d exceeds %d: %w", data.Order, MaxOrder, ErrTooLarge)
	}

	edges := make([]graph.Edge, 0, len(data.Edges))
	for _, pair := range data.Edges {
		for _, v := range pair {
			if v < 0 || v >= data.Order {
				return nil, fmt.Errorf("edge %d-%d: %w", pair[0], pair[1], ErrOutOfRange)
			}
		}
		edges = append(edges, graph.Edge{U: graph.Node(pair[0]), V: graph.Node(pair[1])})
	}
	return graph.New(data.Order, edges), nil
}
