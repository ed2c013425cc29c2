// Package graphio reads and writes graphs in two interchange formats.
//
// # JSON Format
//
// The JSON format names the order and lists every undirected edge once:
//
//	{
//	  "order": 4,
//	  "edges": [[0, 1], [1, 2], [2, 3], [0, 3]]
//	}
//
// Edges are written oriented smaller endpoint first, in the order produced
// by [graph.Edges]. On read, duplicate edges collapse and endpoints must lie
// in [0, order).
//
// # graph6
//
// [EncodeGraph6] and [DecodeGraph6] convert to and from the graph6 format
// used by nauty and the House of Graphs. graph6 has no way to express
// self-loops, so encoding a graph that has one fails with [ErrSelfLoop].
//
// # Files
//
// [Import] and [Export] pick the format from the file extension: ".json" for
// JSON, ".g6" or ".graph6" for graph6 (one graph per file).
//
// Only finite graphs can be written; writers return [ErrUnbounded] otherwise.
package graphio
