// Package dot exports graphs as Graphviz DOT text and renders that text to
// images.
//
// # DOT Format
//
// [Write] emits an undirected graph: one "u -- v" line per edge in
// [graph.Edges] order, then one line per node that has no edges, so isolated
// nodes still show up in the drawing:
//
//	graph K3 {
//	  0 -- 1
//	  0 -- 2
//	  1 -- 2
//	}
//
// Only [graph.Nodes] and [graph.Edges] are consulted, so any finite
// [graph.Graph] can be exported, including lazily computed views.
//
// # Rendering
//
// [Render] lays out DOT source in-process with
// [github.com/goccy/go-graphviz] and returns SVG or PNG bytes. No Graphviz
// installation is needed.
package dot
