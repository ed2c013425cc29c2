// Package random provides a reproducible fair-coin source, unbiased bounded
// integers derived from it, and a sparse random graph generator.
//
// # Bit Sources
//
// Everything random in this module is driven by a [BitGenerator], a stateful
// source of independent fair booleans. [New] returns the default source,
// which is fully determined by its seed ([DefaultSeed] is 1), so a seed
// recorded alongside a result is enough to reproduce it.
//
// # Unbiased Integers
//
// [Intn] turns coin flips into a uniform integer in [0, bound) with the Fast
// Dice Roller of Lumbroso ("Optimal discrete uniform generation from coin
// flips, and applications", 2013). It never uses modulo reduction, so the
// result is exactly uniform, and it consumes the minimal expected number of
// flips.
//
// # Sparse Graphs
//
// [SparseGraph] visits every pair i < j once and keeps the edge when
// Intn(order) < averageDegree, giving each edge probability
// averageDegree/order and each node an expected degree close to
// averageDegree. With ensureConnected set, a node that gained no edge during
// its own pass is linked to a uniformly drawn node. That draw may pick the
// node itself, in which case the graph gets a self-loop.
package random
