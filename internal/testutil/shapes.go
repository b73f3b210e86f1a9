// Package testutil provides shape generators and reference oracles shared
// by the transpose package's test files. None of it is reachable from
// production code; it exists purely to drive and validate tests.
package testutil

import "golang.org/x/exp/constraints"

// Divisors returns every divisor of n, ascending, including 1 and n
// itself.
func Divisors[N constraints.Integer](n N) []N {
	var out []N
	for d := N(1); d*d <= n; d++ {
		if n%d != 0 {
			continue
		}
		out = append(out, d)
		if other := n / d; other != d {
			out = append(out, other)
		}
	}
	return sortAscending(out)
}

func sortAscending[N constraints.Integer](xs []N) []N {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
	return xs
}

// Split picks a factorization size = a * (size/a) whose two factors are
// as close to sqrt(size) as possible, returning a, the larger of the two
// factors closest to the square root (so that size/a, the matrix's other
// dimension, is the smaller one). Used to turn a bare size into a
// concrete (rows, cols) pair.
func Split[N constraints.Integer](size N) N {
	best := N(1)
	for d := N(1); d*d <= size; d++ {
		if size%d == 0 {
			best = d
		}
	}
	return size / best
}

// highlyComposite is a size with many divisors (120 of them), all of
// which are themselves valid matrix-side lengths. Using its divisor set
// as the shape sweep generates a wide range of (rows, cols) pairs,
// including many with nontrivial remainders, from one fixed base.
const highlyComposite = 55440

// Sizes returns the divisors of a fixed highly-composite base, filtered
// to those no greater than limit — a shape sweep for generating
// (a, size/a) and (size/a, a) test cases across many divisor pairs.
func Sizes(limit int) []int {
	var out []int
	for _, d := range Divisors[int](highlyComposite) {
		if d <= limit {
			out = append(out, d)
		}
	}
	return out
}
