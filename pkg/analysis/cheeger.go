package analysis

import (
	"math"
	mathbits "math/bits"
	"time"

	"github.com/soniakeys/bits"

	"github.com/sanjoy/graphs/pkg/graph"
	"github.com/sanjoy/graphs/pkg/observability"
	"github.com/sanjoy/graphs/pkg/random"
)

// MaxExactCheegerOrder is the largest order [ExactCheeger] accepts.
const MaxExactCheegerOrder = 24

// ExactCheeger returns the Cheeger constant of g: the minimum over nonempty
// subsets S with |S| <= order/2 of boundary(S)/|S|.
//
// It returns false, without searching, when g has no finite bound or more
// than [MaxExactCheegerOrder] nodes. Graphs with fewer than two nodes have no
// admissible subset and yield +Inf.
//
// Subsets are enumerated as bitmasks 1..2^order-1. Each node's neighborhood
// is gathered once into a mask, after which a subset's boundary is the
// population count of the union of its members' neighborhoods minus the
// subset itself. The search stops early once a subset with empty boundary
// is found.
func ExactCheeger(g graph.Graph, opts ...Option) (float64, bool) {
	n, finite := g.Order()
	if !finite || n > MaxExactCheegerOrder {
		return 0, false
	}
	o := buildOptions(opts)
	o.hooks.OnCheegerStart(observability.MethodExact, n)
	start := time.Now()

	neighbors := neighborMasks(g, n)
	best := math.Inf(1)
	half := n / 2
	scored := 0

	for mask := uint32(1); mask < 1<<n; mask++ {
		size := mathbits.OnesCount32(mask)
		if size > half {
			continue
		}
		scored++

		var reach uint32
		for rest := mask; rest != 0; rest &= rest - 1 {
			reach |= neighbors[mathbits.TrailingZeros32(rest)]
		}
		boundary := mathbits.OnesCount32(reach &^ mask)

		if ratio := float64(boundary) / float64(size); ratio < best {
			best = ratio
			o.logger.Debug("new cheeger minimum", "subset", mask, "size", size, "boundary", boundary, "ratio", ratio)
			if best == 0 {
				break
			}
		}
	}

	o.hooks.OnCheegerComplete(observability.MethodExact, n, scored, time.Since(start))
	return best, true
}

// neighborMasks returns, for each node, the set of its neighbors as a mask.
func neighborMasks(g graph.Graph, n int) []uint32 {
	masks := make([]uint32, n)
	for v := range n {
		for e := range g.IncidentEdges(graph.Node(v)) {
			masks[v] |= 1 << uint(e.Other(graph.Node(v)))
		}
	}
	return masks
}

// CheegerUpperBound estimates an upper bound on the Cheeger constant of g
// from iterations random subsets.
//
// Each iteration draws one bit from gen per node, in node order, to decide
// membership. Iterations drawing every node are skipped; subsets larger than
// half the graph are replaced by their complement; empty subsets are
// skipped. The smallest boundary(S)/|S| seen is returned, or +Inf when no
// iteration produced a usable subset. It returns false when g has no finite
// bound.
//
// Deprecated: the result depends on the sampled subsets and is frequently far
// above the true constant. Use [ExactCheeger]; this function only remains so
// that existing sampled results can be reproduced.
func CheegerUpperBound(g graph.Graph, gen random.BitGenerator, iterations int, opts ...Option) (float64, bool) {
	n, finite := g.Order()
	if !finite {
		return 0, false
	}
	o := buildOptions(opts)
	o.hooks.OnCheegerStart(observability.MethodSampled, n)
	start := time.Now()

	best := math.Inf(1)
	subset := bits.New(n)
	scored := 0

	for range iterations {
		subset.ClearAll()
		size := 0
		for v := range n {
			if gen.Bit() {
				subset.SetBit(v, 1)
				size++
			}
		}
		if size == n {
			continue
		}
		if size > n/2 {
			for v := range n {
				subset.SetBit(v, 1-subset.Bit(v))
			}
			size = n - size
		}
		if size == 0 {
			continue
		}
		scored++

		if ratio := float64(Boundary(g, subset)) / float64(size); ratio < best {
			best = ratio
			o.logger.Debug("new sampled minimum", "size", size, "ratio", ratio)
		}
	}

	o.hooks.OnCheegerComplete(observability.MethodSampled, n, scored, time.Since(start))
	return best, true
}
