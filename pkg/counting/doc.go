// Package counting counts regular graphs up to isomorphism.
//
// [CountRegular] enumerates every simple graph on order nodes with exactly
// order*degree/2 edges by backtracking over node pairs in lexicographic
// order, keeps the candidates in which every node has the requested degree,
// and collapses isomorphic candidates by relabeling each one under every
// permutation of its nodes. The work grows with order! and with the number of
// edge subsets, so the counter is only practical for small orders; orders
// above [MaxOrder] are rejected.
//
// Self-loops are never considered, so a "regular graph" here is always
// simple.
//
//	n := counting.CountRegular(6, 3) // 2: the prism and K(3,3)
package counting
