package analysis

import (
	"fmt"

	"github.com/soniakeys/bits"

	"github.com/sanjoy/graphs/pkg/graph"
)

// Boundary returns the number of distinct nodes outside s that are adjacent
// to at least one node in s. A node reached through several edges counts
// once. s must have one bit per node of g; Boundary panics otherwise.
func Boundary(g graph.Graph, s bits.Bits) int {
	n, finite := g.Order()
	if !finite || s.Num != n {
		panic(fmt.Sprintf("analysis: subset of %d bits for graph of order %d", s.Num, n))
	}
	outside := bits.New(n)
	s.IterateOnes(func(v int) bool {
		for e := range g.IncidentEdges(graph.Node(v)) {
			w := int(e.Other(graph.Node(v)))
			if s.Bit(w) == 0 {
				outside.SetBit(w, 1)
			}
		}
		return true
	})
	return outside.OnesCount()
}
