package transpose

import (
	"github.com/katalvlaran/gw18transpose/internal/strategy"
	"github.com/katalvlaran/gw18transpose/transpose/internal/fork"
)

// opTranspose names the public entry point, for error wrapping.
const opTranspose = "Transpose"

// Transpose rewrites v, the row-major representation of an rows×cols
// matrix, in place into the row-major representation of the cols×rows
// transpose: after the call, v[j*rows+i] == old_v[i*cols+j] for every
// 0 <= i < rows, 0 <= j < cols.
//
// T may be any type; the engine only ever copies elements of v between
// slice positions, so no constraint beyond a plain value type is needed.
//
// Dispatch order:
//  1. rows <= 1 or cols <= 1: no-op, layout is already unchanged.
//  2. rows == cols: delegate to the square-transpose collaborator.
//  3. rows*cols <= COPY_THRESHOLD: delegate to the copy-based collaborator.
//  4. rows > cols (tall): split into squares of side cols plus a
//     remainder strip, transpose-join the squares, recursively transpose
//     the remainder, then shuffle the remainder's columns into place.
//  5. rows < cols (wide): the dual of (4), unshuffle-then-transpose.
//
// A shape mismatch (len(v) != rows*cols) or a dimension product that
// would overflow int is a contract violation, reported as an error
// wrapping ErrShapeMismatch, ErrInvalidShape, or ErrDimensionOverflow —
// never as a panic, since unlike an internal recursive-invariant break,
// a caller-supplied shape is not a programming error in this package.
func Transpose[T any](v []T, rows, cols int, opts ...Option) error {
	if rows < 0 || cols < 0 {
		return opErrorf(opTranspose, ErrInvalidShape)
	}
	size, err := checkedMul(rows, cols)
	if err != nil {
		return opErrorf(opTranspose, err)
	}
	if len(v) != size {
		return opErrorf(opTranspose, ErrShapeMismatch)
	}

	cfg := resolve(opts)
	transpose(cfg, v, rows, cols)
	return nil
}

// transpose is the unexported recursive core, operating on a buffer
// already known to satisfy len(v) == rows*cols. It never returns an
// error: by the time it runs, the shape has been validated once at the
// top of Transpose, and every recursive call below passes down a slice
// and shape pair it computed itself from an already-valid parent.
func transpose[T any](cfg config, v []T, rows, cols int) {
	switch {
	case rows <= 1 || cols <= 1:
		return
	case rows == cols:
		strategy.SquareTranspose(v, rows)
	case rows*cols <= cfg.copyThreshold:
		strategy.CopyTranspose(v, rows, cols)
	case rows > cols:
		transposeTall(cfg, v, rows, cols)
	default:
		transposeWide(cfg, v, rows, cols)
	}
}

// transposeTall handles rows > cols: reduce to sq = rows/cols squares of
// side cols plus a remainder strip of rem = rows%cols rows, transpose
// the squares and the remainder independently, then merge the
// remainder's columns into the square result with a shuffle.
func transposeTall[T any](cfg config, v []T, rows, cols int) {
	sq, rem := rows/cols, rows%cols
	head, tail := v[:sq*cols*cols], v[sq*cols*cols:]

	if rem == 0 {
		transposeJoin(cfg, head, sq, cols)
		return
	}

	size := rows * cols
	fork.Join(size, cfg.parTransposeGate,
		func() { transposeJoin(cfg, head, sq, cols) },
		func() { transpose(cfg, tail, rem, cols) },
	)

	shuffle(cfg, v, sq*cols, rem, cols)
}

// transposeWide handles rows < cols: reduce to sq = cols/rows squares of
// side rows plus a remainder strip of rem = cols%rows columns. If there
// is no remainder, partition-transpose the squares directly. Otherwise
// peel the remainder off first with an unshuffle, then partition-
// transpose the squares and recursively transpose the remainder
// independently.
func transposeWide[T any](cfg config, v []T, rows, cols int) {
	sq, rem := cols/rows, cols%rows

	if rem == 0 {
		partitionTranspose(cfg, v, sq, rows)
		return
	}

	unshuffle(cfg, v, sq*rows, rem, rows)
	head, tail := v[:sq*rows*rows], v[sq*rows*rows:]

	size := rows * cols
	fork.Join(size, cfg.parTransposeGate,
		func() { partitionTranspose(cfg, head, sq, rows) },
		func() { transpose(cfg, tail, rows, rem) },
	)
}

// checkedMul returns a*b, or ErrDimensionOverflow if the product would
// overflow int on this platform.
func checkedMul(a, b int) (int, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	p := a * b
	if p/a != b {
		return 0, ErrDimensionOverflow
	}
	return p, nil
}
