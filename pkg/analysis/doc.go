// Package analysis computes degree statistics and the Cheeger constant of
// finite graphs.
//
// # Cheeger Constant
//
// For a graph with node set V, the boundary of a subset S is the number of
// distinct nodes outside S adjacent to some node in S. The Cheeger constant is
// the minimum of boundary(S)/|S| over nonempty subsets with |S| <= |V|/2.
// [ExactCheeger] finds it by scoring every admissible subset, so it refuses
// graphs with more than [MaxExactCheegerOrder] nodes.
//
// [CheegerUpperBound] samples random subsets instead. It is deprecated: the
// bound it returns depends on luck and must not be used to check results.
//
// # Infeasible Inputs
//
// Functions that need a finite graph return ok == false for graphs without a
// finite bound instead of failing; ExactCheeger does the same above its size
// limit. These checks happen before any search work.
package analysis
