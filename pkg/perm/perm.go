package perm

import (
	"iter"
	"slices"
)

// MaxOrder is the largest n for which [Generate] may be asked for every
// permutation. 10! is already 3,628,800 slices.
const MaxOrder = 10

// Seq returns the identity permutation [0, 1, ..., n-1].
// For n <= 0, Seq returns an empty slice.
func Seq(n int) []int {
	result := make([]int, max(n, 0))
	for i := range result {
		result[i] = i
	}
	return result
}

// Factorial returns n!. For n <= 1, Factorial returns 1.
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

// All yields the permutations of [0, n) in Heap's order, starting with the
// identity. The yielded slice is reused between iterations; clone it to keep
// it. For n <= 0 a single empty permutation is yielded.
func All(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		p := Seq(n)
		if !yield(p) {
			return
		}
		state := make([]int, len(p))
		for i := 0; i < len(p); {
			if state[i] < i {
				if i&1 == 0 {
					p[0], p[i] = p[i], p[0]
				} else {
					p[state[i]], p[i] = p[i], p[state[i]]
				}
				if !yield(p) {
					return
				}
				state[i]++
				i = 0
			} else {
				state[i] = 0
				i++
			}
		}
	}
}

// Generate returns permutations of [0, n) in the order of [All].
//
// If limit > 0, Generate returns at most limit permutations; otherwise it
// returns all n!. Each returned slice is a separate allocation.
//
// Generate panics when asked for every permutation of more than [MaxOrder]
// elements.
func Generate(n, limit int) [][]int {
	if limit <= 0 && n > MaxOrder {
		panic("perm: refusing to generate all permutations of more than 10 elements")
	}
	capacity := Factorial(min(n, MaxOrder))
	if limit > 0 {
		capacity = min(capacity, limit)
	}
	result := make([][]int, 0, capacity)
	for p := range All(n) {
		result = append(result, slices.Clone(p))
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result
}

// Inverse returns q such that q[p[i]] == i. p must be a permutation.
func Inverse(p []int) []int {
	q := make([]int, len(p))
	for i, v := range p {
		q[v] = i
	}
	return q
}
