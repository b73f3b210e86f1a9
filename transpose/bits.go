package transpose

import "math/bits"

// largestPowerOfTwoLessThan returns the largest power of two strictly
// less than m, using integer bit arithmetic rather than a floating-point
// log2 (2^floor(log2(m-1))): 1 << (bits.Len(uint(m-1)) - 1) agrees with
// the floating-point formula for every m in [2, 2^52] but is deterministic
// across platforms and has no edge cases near powers of two.
//
// The function is total: for m <= 1 the floating-point formula is
// undefined (log2 of a non-positive number), but every call site already
// guards m <= 1 before recursing, so that branch is dead in production.
// Made total here anyway (returns 0) so the function carries no implicit
// precondition of its own.
func largestPowerOfTwoLessThan(m int) int {
	if m <= 1 {
		return 0
	}
	return 1 << (bits.Len(uint(m-1)) - 1)
}
