package transpose

import (
	"github.com/katalvlaran/gw18transpose/internal/strategy"
	"github.com/katalvlaran/gw18transpose/transpose/internal/fork"
)

// transposeJoin views v as the row-major (kn)×n matrix formed by k
// consecutive n×n blocks stacked vertically, and rewrites it in place
// into its row-major n×(kn) transpose: after the call,
// v[j*(k*n)+i] == old_v[i*n+j] for every 0 <= i < k*n, 0 <= j < n.
// len(v) must equal k*n*n.
//
// k == 1 delegates straight to the square-transpose collaborator.
// Otherwise the blocks are split into a top half (k/2 blocks) and a
// bottom half (the rest), each transposed independently — in parallel
// once large enough — and the two n-row results are merged into one
// n×(kn) result with a single shuffle that interleaves their rows.
func transposeJoin[T any](cfg config, v []T, k, n int) {
	if k == 1 {
		strategy.SquareTranspose(v, n)
		return
	}

	kTop := k / 2
	kBottom := k - kTop
	blockLen := n * n
	top, bottom := v[:kTop*blockLen], v[kTop*blockLen:]

	size := k * blockLen
	fork.Join(size, cfg.parTransposeGate,
		func() { transposeJoin(cfg, top, kTop, n) },
		func() { transposeJoin(cfg, bottom, kBottom, n) },
	)

	shuffle(cfg, v, kTop*n, kBottom*n, n)
}

// partitionTranspose is the dual of transposeJoin: v is the row-major
// representation of an n×(kn) matrix, and after the call it holds its
// row-major (kn)×n transpose, laid out as k consecutive n×n blocks
// stacked vertically. len(v) must equal k*n*n.
//
// k == 1 delegates straight to the square-transpose collaborator.
// Otherwise a single unshuffle separates the interleaved column-strips
// into a prefix of kTop strips and a suffix of kBottom strips, and the
// two disjoint sub-slices are recursed into independently — in parallel
// once large enough.
func partitionTranspose[T any](cfg config, v []T, k, n int) {
	if k == 1 {
		strategy.SquareTranspose(v, n)
		return
	}

	kTop := k / 2
	kBottom := k - kTop
	blockLen := n * n

	unshuffle(cfg, v, kTop*n, kBottom*n, n)
	top, bottom := v[:kTop*blockLen], v[kTop*blockLen:]

	size := k * blockLen
	fork.Join(size, cfg.parTransposeGate,
		func() { partitionTranspose(cfg, top, kTop, n) },
		func() { partitionTranspose(cfg, bottom, kBottom, n) },
	)
}
