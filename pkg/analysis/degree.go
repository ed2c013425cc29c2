package analysis

import "github.com/sanjoy/graphs/pkg/graph"

// MinDegree returns the smallest degree of any node. It returns false when g
// has no finite bound or no nodes.
func MinDegree(g graph.Graph) (int, bool) {
	n, finite := g.Order()
	if !finite || n == 0 {
		return 0, false
	}
	best := -1
	for v := range graph.Nodes(g) {
		if d := graph.Degree(g, v); best < 0 || d < best {
			best = d
		}
	}
	return best, true
}

// IsRegular returns the common degree when every node of g has the same
// degree. It returns false for irregular graphs and for graphs without a
// finite bound. A graph with no nodes is regular of degree 0.
func IsRegular(g graph.Graph) (int, bool) {
	if _, finite := g.Order(); !finite {
		return 0, false
	}
	degree := -1
	for v := range graph.Nodes(g) {
		d := graph.Degree(g, v)
		if degree < 0 {
			degree = d
			continue
		}
		if d != degree {
			return 0, false
		}
	}
	return max(degree, 0), true
}
