package testutil

import "math"

// LargestPowerOfTwoFloat is the floating-point reference formula
// 2^floor(log2(m-1)), kept only as a test oracle to confirm transpose's
// integer bit-width implementation agrees with it across m in [2, 2^20].
// It is never used by production code and is undefined for m <= 1.
func LargestPowerOfTwoFloat(m int) int {
	return int(math.Pow(2, math.Floor(math.Log2(float64(m-1)))))
}

// IotaBuffer returns []int64{0, 1, ..., n-1}, the canonical test fixture
// value used throughout spec.md §8's correctness-vs-oracle scenarios.
func IotaBuffer(n int) []int64 {
	v := make([]int64, n)
	for i := range v {
		v[i] = int64(i)
	}
	return v
}

// ExpectedTranspose returns the row-major transpose of the rows×cols
// matrix v, computed by direct index arithmetic rather than any of the
// algorithms under test — the independent oracle correctness tests
// compare against.
func ExpectedTranspose[T any](v []T, rows, cols int) []T {
	out := make([]T, len(v))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[j*rows+i] = v[i*cols+j]
		}
	}
	return out
}
