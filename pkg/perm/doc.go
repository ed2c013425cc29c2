// Package perm enumerates permutations of node labels.
//
// The regular-graph counter relabels every candidate graph under each
// permutation of its nodes to decide whether an isomorphic copy has already
// been recorded. [Generate] materializes the full permutation table once per
// order so that it can be reused across candidates; [All] streams the same
// sequence lazily.
//
// Both follow Heap's algorithm: the first permutation is always the identity
// and consecutive permutations differ by a single swap.
package perm
