package strategy

// SquareTranspose transposes an n×n row-major matrix v in place. It must
// handle arbitrary n >= 1; n == 0 and n == 1 are no-ops.
//
// Complexity: O(n²) time, O(1) auxiliary space. Elements on the diagonal
// (i == j) never move; off-diagonal pairs (i,j) and (j,i) for i < j are
// swapped exactly once.
func SquareTranspose[T any](v []T, n int) {
	for i := 0; i < n; i++ {
		row := i * n
		for j := i + 1; j < n; j++ {
			col := j * n
			v[row+j], v[col+i] = v[col+i], v[row+j]
		}
	}
}
