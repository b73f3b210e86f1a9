package transpose

// exchange rearranges v, of length a+b, from layout A‖B (|A| = a, |B| =
// b) to B‖A in place, using only pairwise swaps of equal-length
// sub-slices. It is a leaf primitive: no parallelism, no allocation.
//
// If a == b the two halves are swapped directly. Otherwise let s =
// min(a, b); the first s elements of v are swapped with its last s
// elements, moving the shorter side to its target end of the range, and the remainder — now a smaller exchange problem of sizes
// |a-b| and s — is handled by the next iteration of the loop below.
// Each iteration strictly reduces a+b, so the loop terminates; total
// work is O(a+b).
func exchange[T any](v []T, a, b int) {
	for a > 0 && b > 0 {
		if a == b {
			left, right := v[:a], v[a:]
			for i := range left {
				left[i], right[i] = right[i], left[i]
			}
			return
		} else if a > b {
			// Swap B against the leading b elements of A, shrink A.
			left, rest := v[:b], v[b:]
			right := rest[a-b:]
			for i := range left {
				left[i], right[i] = right[i], left[i]
			}
			v = v[b:]
			a -= b
		} else {
			// Swap A against the trailing a elements of B, shrink B.
			left, rest := v[:a], v[a:]
			right := rest[b-a:]
			for i := range left {
				left[i], right[i] = right[i], left[i]
			}
			v = v[:b]
			b -= a
		}
	}
}
