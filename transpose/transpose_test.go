package transpose_test

import (
	"testing"

	"github.com/katalvlaran/gw18transpose/internal/testutil"
	"github.com/katalvlaran/gw18transpose/transpose"
	"github.com/stretchr/testify/require"
)

// TestTranspose_CorrectnessVsOracle covers spec.md §8 item 1: for every
// shape, Transpose must agree with the independent index-arithmetic
// oracle. WithCopyThreshold(4) forces the recursive GW18 path to run for
// shapes that would otherwise take the copy fast path, so the sweep
// actually exercises exchange/shuffle/transpose_join/partition_transpose
// rather than only copy_transpose.
func TestTranspose_CorrectnessVsOracle(t *testing.T) {
	for rows := 1; rows <= 24; rows++ {
		for cols := 1; cols <= 24; cols++ {
			v := testutil.IotaBuffer(rows * cols)
			want := testutil.ExpectedTranspose(v, rows, cols)

			got := append([]int64{}, v...)
			err := transpose.Transpose(got, rows, cols, transpose.WithCopyThreshold(4))
			require.NoError(t, err)
			require.Equalf(t, want, got, "rows=%d cols=%d", rows, cols)
		}
	}
}

// TestTranspose_DivisorDrivenShapeSweep supplements the named-shape and
// small-exhaustive sweeps above with a divisor-driven one: every divisor
// of a fixed highly-composite base, up to a limit, is factored by
// testutil.Split into an (a, size/a) pair close to square, and both
// orientations are checked against the independent oracle. This covers
// shapes the 1..24 exhaustive sweep above never reaches, such as 35×11
// and 22×15.
func TestTranspose_DivisorDrivenShapeSweep(t *testing.T) {
	for _, size := range testutil.Sizes(400) {
		a := testutil.Split(size)
		b := size / a

		for _, shape := range []struct{ rows, cols int }{{a, b}, {b, a}} {
			v := testutil.IotaBuffer(shape.rows * shape.cols)
			want := testutil.ExpectedTranspose(v, shape.rows, shape.cols)

			got := append([]int64{}, v...)
			require.NoError(t, transpose.Transpose(got, shape.rows, shape.cols, transpose.WithCopyThreshold(4)))
			require.Equalf(t, want, got, "rows=%d cols=%d (size=%d)", shape.rows, shape.cols, size)
		}
	}
}

// TestTranspose_Involution covers spec.md §8 item 2: transposing a
// transpose recovers the original buffer.
func TestTranspose_Involution(t *testing.T) {
	for _, shape := range []struct{ rows, cols int }{
		{1, 1}, {1, 9}, {9, 1}, {5, 7}, {7, 5}, {32, 16}, {17, 20},
	} {
		original := testutil.IotaBuffer(shape.rows * shape.cols)
		v := append([]int64{}, original...)

		require.NoError(t, transpose.Transpose(v, shape.rows, shape.cols, transpose.WithCopyThreshold(4)))
		require.NoError(t, transpose.Transpose(v, shape.cols, shape.rows, transpose.WithCopyThreshold(4)))
		require.Equal(t, original, v)
	}
}

// TestTranspose_BoundaryShapes covers spec.md §8 item 5: r == 1 or c == 1
// is the identity, r == c matches square_transpose, and the COPY_THRESHOLD
// boundary produces identical output on either side of it.
func TestTranspose_BoundaryShapes(t *testing.T) {
	t.Run("row vector is identity", func(t *testing.T) {
		v := testutil.IotaBuffer(9)
		want := append([]int64{}, v...)
		require.NoError(t, transpose.Transpose(v, 1, 9))
		require.Equal(t, want, v)
	})

	t.Run("column vector is identity", func(t *testing.T) {
		v := testutil.IotaBuffer(9)
		want := append([]int64{}, v...)
		require.NoError(t, transpose.Transpose(v, 9, 1))
		require.Equal(t, want, v)
	})

	t.Run("square shape", func(t *testing.T) {
		const n = 6
		v := testutil.IotaBuffer(n * n)
		want := testutil.ExpectedTranspose(v, n, n)
		got := append([]int64{}, v...)
		require.NoError(t, transpose.Transpose(got, n, n))
		require.Equal(t, want, got)
	})

	t.Run("copy threshold boundary", func(t *testing.T) {
		const threshold = 12
		// 3*4 == 12 takes the copy path; 3*5 == 15 takes the recursive path.
		atBoundary := testutil.IotaBuffer(12)
		wantAtBoundary := testutil.ExpectedTranspose(atBoundary, 3, 4)
		gotAtBoundary := append([]int64{}, atBoundary...)
		require.NoError(t, transpose.Transpose(gotAtBoundary, 3, 4, transpose.WithCopyThreshold(threshold)))
		require.Equal(t, wantAtBoundary, gotAtBoundary)

		aboveBoundary := testutil.IotaBuffer(15)
		wantAboveBoundary := testutil.ExpectedTranspose(aboveBoundary, 3, 5)
		gotAboveBoundary := append([]int64{}, aboveBoundary...)
		require.NoError(t, transpose.Transpose(gotAboveBoundary, 3, 5, transpose.WithCopyThreshold(threshold)))
		require.Equal(t, wantAboveBoundary, gotAboveBoundary)
	})
}

// TestTranspose_NamedScenarios reproduces spec.md §8's concrete scenarios
// verbatim, including the exact expected output given for shape (3, 5).
func TestTranspose_NamedScenarios(t *testing.T) {
	t.Run("32x16", func(t *testing.T) {
		v := testutil.IotaBuffer(512)
		require.NoError(t, transpose.Transpose(v, 32, 16))
		for i := 0; i < 32; i++ {
			for j := 0; j < 16; j++ {
				require.Equal(t, int64(16*i+j), v[j*32+i])
			}
		}
	})

	t.Run("16x32", func(t *testing.T) {
		v := testutil.IotaBuffer(512)
		require.NoError(t, transpose.Transpose(v, 16, 32))
		for i := 0; i < 16; i++ {
			for j := 0; j < 32; j++ {
				require.Equal(t, int64(32*i+j), v[j*16+i])
			}
		}
	})

	t.Run("17x20 wide remainder", func(t *testing.T) {
		v := testutil.IotaBuffer(340)
		want := testutil.ExpectedTranspose(v, 17, 20)
		require.NoError(t, transpose.Transpose(v, 17, 20, transpose.WithCopyThreshold(4)))
		require.Equal(t, want, v)
	})

	t.Run("20x17 tall remainder", func(t *testing.T) {
		v := testutil.IotaBuffer(340)
		want := testutil.ExpectedTranspose(v, 20, 17)
		require.NoError(t, transpose.Transpose(v, 20, 17, transpose.WithCopyThreshold(4)))
		require.Equal(t, want, v)
	})

	t.Run("3x5 forces recursive path under COPY_THRESHOLD=4", func(t *testing.T) {
		v := testutil.IotaBuffer(15)
		require.NoError(t, transpose.Transpose(v, 3, 5, transpose.WithCopyThreshold(4)))
		want := []int64{0, 5, 10, 1, 6, 11, 2, 7, 12, 3, 8, 13, 4, 9, 14}
		require.Equal(t, want, v)
	})

	t.Run("1024x3 and 3x1024 narrow strip stress", func(t *testing.T) {
		for _, shape := range []struct{ rows, cols int }{{1024, 3}, {3, 1024}} {
			v := testutil.IotaBuffer(shape.rows * shape.cols)
			want := testutil.ExpectedTranspose(v, shape.rows, shape.cols)
			require.NoError(t, transpose.Transpose(v, shape.rows, shape.cols, transpose.WithCopyThreshold(4)))
			require.Equalf(t, want, v, "rows=%d cols=%d", shape.rows, shape.cols)
		}
	})
}

// TestTranspose_ShapeErrors covers the contract-violation error paths:
// negative dimensions, a length mismatch, and dimension overflow.
func TestTranspose_ShapeErrors(t *testing.T) {
	t.Run("negative rows", func(t *testing.T) {
		err := transpose.Transpose([]int{1, 2}, -1, 2)
		require.ErrorIs(t, err, transpose.ErrInvalidShape)
	})

	t.Run("length mismatch", func(t *testing.T) {
		err := transpose.Transpose([]int{1, 2, 3}, 2, 2)
		require.ErrorIs(t, err, transpose.ErrShapeMismatch)
	})

	t.Run("dimension overflow", func(t *testing.T) {
		const big = 1 << 40
		err := transpose.Transpose([]int{}, big, big)
		require.ErrorIs(t, err, transpose.ErrDimensionOverflow)
	})
}
