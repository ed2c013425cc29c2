// Package pkg provides the libraries behind the graphs tool: lazily
// enumerated undirected graphs, a zoo of constructions, expansion analyses
// and a regular-graph counter.
//
// # Overview
//
// Every graph implements [graph.Graph]: an order (possibly unbounded) and a
// restartable sequence of incident edges per node. Constructions never
// materialize more than they must, so a replacement product of two large
// graphs costs nothing until it is walked. The pkg directory is organized
// into three areas:
//
//  1. Core - graph abstraction, randomness, constructions and analyses
//  2. Formats - serialization and rendering
//  3. Infrastructure - caching, errors, observability hooks
//
// # Architecture
//
//	[zoo] / [random] constructors ──▶ graph.Graph ──▶ [analysis]
//	                                       │
//	                    [graphio] (JSON, graph6), [render/dot] (DOT, SVG, PNG)
//
//	[counting] ──▶ representatives as *graph.Concrete ──▶ [graphio] graph6
//
// # Quick Start
//
// Build a replacement product and measure its expansion:
//
//	outer := zoo.Ring(4)
//	inner := zoo.Complete(2, false)
//	if err := zoo.ValidateReplacementProduct(outer, inner); err != nil {
//	    return err
//	}
//	p := zoo.ReplacementProduct(outer, inner)
//	h, ok := analysis.ExactCheeger(p) // 0.5, true
//
// Count regular graphs up to isomorphism:
//
//	n := counting.CountRegular(6, 3) // 2
//
// # Main Packages
//
// ## Core
//
// [graph] - The Graph interface, oriented edges, lazy node and edge
// sequences, the sorted-adjacency Concrete store and the consistency check.
//
// [random] - Seeded fair-coin bit generator, the Fast Dice Roller and the
// random sparse graph generator.
//
// [zoo] - Complete, unconnected, complete bipartite and ring graphs, the
// lazy replacement product and the unbounded Ray.
//
// [analysis] - Minimum degree, regularity, subset boundary, exact Cheeger
// constant and the deprecated sampled upper bound.
//
// [counting] - Exhaustive enumeration of regular graphs with isomorphism
// rejection over [perm] permutations.
//
// ## Formats
//
// [graphio] - JSON and graph6 encodings and file import/export.
//
// [render/dot] - Graphviz DOT text and SVG/PNG rendering.
//
// ## Infrastructure
//
// [cache] - File, Redis and null result caches with key derivation.
//
// [errors] - Coded errors and input validation for the outer surfaces.
//
// [observability] - Hook interfaces for analyses, counting and the cache.
//
// [buildinfo] - Version information set at link time.
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/analysis/... # Specific package
//	go test -run Example ./... # Examples only
//
// [graph]: https://pkg.go.dev/github.com/sanjoy/graphs/pkg/graph
// [random]: https://pkg.go.dev/github.com/sanjoy/graphs/pkg/random
// [zoo]: https://pkg.go.dev/github.com/sanjoy/graphs/pkg/zoo
// [analysis]: https://pkg.go.dev/github.com/sanjoy/graphs/pkg/analysis
// [counting]: https://pkg.go.dev/github.com/sanjoy/graphs/pkg/counting
// [perm]: https://pkg.go.dev/github.com/sanjoy/graphs/pkg/perm
// [graphio]: https://pkg.go.dev/github.com/sanjoy/graphs/pkg/graphio
// [render/dot]: https://pkg.go.dev/github.com/sanjoy/graphs/pkg/render/dot
// [cache]: https://pkg.go.dev/github.com/sanjoy/graphs/pkg/cache
// [errors]: https://pkg.go.dev/github.com/sanjoy/graphs/pkg/errors
// [observability]: https://pkg.go.dev/github.com/sanjoy/graphs/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/sanjoy/graphs/pkg/buildinfo
package pkg
