package counting

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/soniakeys/bits"

	"github.com/sanjoy/graphs/pkg/graph"
	"github.com/sanjoy/graphs/pkg/graphio"
	"github.com/sanjoy/graphs/pkg/perm"
)

// MaxOrder is the largest order the counter accepts.
const MaxOrder = perm.MaxOrder

var (
	// ErrOddDegreeSum is returned by [Validate] when order*degree is odd.
	ErrOddDegreeSum = errors.New("order*degree must be even")

	// ErrDegreeTooLarge is returned by [Validate] when degree >= order.
	ErrDegreeTooLarge = errors.New("degree must be less than order")

	// ErrNegative is returned by [Validate] for a negative order or degree.
	ErrNegative = errors.New("order and degree must not be negative")

	// ErrOrderTooLarge is returned by [Validate] when order exceeds
	// [MaxOrder].
	ErrOrderTooLarge = errors.New("order too large to count")
)

// Validate reports why (order, degree) cannot be counted, or nil.
func Validate(order, degree int) error {
	switch {
	case order < 0 || degree < 0:
		return fmt.Errorf("order %d, degree %d: %w", order, degree, ErrNegative)
	case order*degree%2 != 0:
		return fmt.Errorf("order %d, degree %d: %w", order, degree, ErrOddDegreeSum)
	case order <= degree:
		return fmt.Errorf("order %d, degree %d: %w", order, degree, ErrDegreeTooLarge)
	case order > MaxOrder:
		return fmt.Errorf("order %d exceeds %d: %w", order, MaxOrder, ErrOrderTooLarge)
	}
	return nil
}

// CountRegular returns the number of pairwise non-isomorphic simple graphs
// with order nodes, all of degree degree. It panics when [Validate] rejects
// the arguments.
func CountRegular(order, degree int, opts ...Option) int {
	return len(RegularGraphs(order, degree, opts...))
}

// RegularGraphs returns one representative per isomorphism class of simple
// degree-regular graphs on order nodes, in discovery order. It panics when
// [Validate] rejects the arguments.
func RegularGraphs(order, degree int, opts ...Option) []*graph.Concrete {
	if err := Validate(order, degree); err != nil {
		panic("counting: " + err.Error())
	}
	s := newSearch(order, degree, buildOptions(opts))
	start := time.Now()
	s.run()
	s.o.hooks.OnCountComplete(order, degree, len(s.found), time.Since(start))
	return s.found
}

// search is the mutable backtracking state. chosen is the explicit choice
// stack of indices into pairs; degrees tracks the current degree of every
// node.
type search struct {
	order, degree int
	size          int
	pairs         []graph.Edge
	chosen        []int
	degrees       []int
	next          int

	seen  map[string]struct{}
	found []*graph.Concrete
	o     options
}

func newSearch(order, degree int, o options) *search {
	pairs := make([]graph.Edge, 0, order*(order-1)/2)
	for i := range order {
		for j := i + 1; j < order; j++ {
			pairs = append(pairs, graph.Edge{U: graph.Node(i), V: graph.Node(j)})
		}
	}
	size := order * degree / 2
	return &search{
		order:   order,
		degree:  degree,
		size:    size,
		pairs:   pairs,
		chosen:  make([]int, 0, size),
		degrees: make([]int, order),
		seen:    make(map[string]struct{}),
		o:       o,
	}
}

func (s *search) run() {
	for {
		if len(s.chosen) == s.size {
			s.evaluate()
			if !s.pop() {
				return
			}
			continue
		}
		if s.push() {
			continue
		}
		s.o.hooks.OnCandidate(s.order, s.degree, false)
		if !s.pop() {
			return
		}
	}
}

// push chooses the next pair, at or after s.next, whose endpoints both still
// have room. It reports false when no such pair remains or too few pairs
// remain to complete the candidate.
func (s *search) push() bool {
	for ; s.next < len(s.pairs); s.next++ {
		if len(s.pairs)-s.next < s.size-len(s.chosen) {
			return false
		}
		p := s.pairs[s.next]
		if s.degrees[p.U] == s.degree || s.degrees[p.V] == s.degree {
			continue
		}
		s.degrees[p.U]++
		s.degrees[p.V]++
		s.chosen = append(s.chosen, s.next)
		s.next++
		return true
	}
	return false
}

// pop undoes the most recent choice and resumes after it. It reports false
// when the stack is empty and the search is over.
func (s *search) pop() bool {
	if len(s.chosen) == 0 {
		return false
	}
	top := s.chosen[len(s.chosen)-1]
	s.chosen = s.chosen[:len(s.chosen)-1]
	p := s.pairs[top]
	s.degrees[p.U]--
	s.degrees[p.V]--
	s.next = top + 1
	return true
}

// evaluate records a completed candidate unless it is isomorphic to one
// recorded earlier. push never lets a degree exceed s.degree, and a complete
// candidate has order*degree/2 edges, so every node has exactly s.degree.
func (s *search) evaluate() {
	for _, d := range s.degrees {
		if d != s.degree {
			panic(fmt.Sprintf("counting: completed candidate has degree %d, want %d", d, s.degree))
		}
	}
	s.o.hooks.OnCandidate(s.order, s.degree, true)

	identity := s.relabel(perm.Seq(s.order))
	for p := range perm.All(s.order) {
		if _, ok := s.seen[s.relabel(p)]; ok {
			return
		}
	}
	s.seen[identity] = struct{}{}

	edges := make([]graph.Edge, len(s.chosen))
	for i, idx := range s.chosen {
		edges[i] = s.pairs[idx]
	}
	g := graph.New(s.order, edges)
	s.found = append(s.found, g)
	if form, err := graphio.EncodeGraph6(g); err == nil {
		s.o.logger.Debug("found regular graph", "order", s.order, "degree", s.degree, "graph6", form, "classes", len(s.found))
	}
}

// relabel returns the adjacency bitmap of the current candidate with every
// node v renamed to p[v], as a map key.
func (s *search) relabel(p []int) string {
	m := bits.New(s.order * s.order)
	for _, idx := range s.chosen {
		e := s.pairs[idx]
		u, v := p[e.U], p[e.V]
		m.SetBit(u*s.order+v, 1)
		m.SetBit(v*s.order+u, 1)
	}
	key := make([]byte, 0, 8*len(m.Bits))
	for _, w := range m.Bits {
		key = binary.LittleEndian.AppendUint64(key, w)
	}
	return string(key)
}
