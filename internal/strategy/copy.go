package strategy

// CopyTranspose transposes the rows×cols row-major matrix v in place via
// one auxiliary buffer of length rows*cols. It exists so very small
// sub-problems pay no recursion overhead, and so the recursive GW18 path
// has a trusted, independently-implemented comparison oracle for tests.
//
// Complexity: O(rows*cols) time, O(rows*cols) auxiliary space — the only
// place in the engine where auxiliary space scales with the problem size,
// which is exactly why the caller gates its use behind COPY_THRESHOLD.
func CopyTranspose[T any](v []T, rows, cols int) {
	if rows <= 1 || cols <= 1 {
		return
	}

	aux := make([]T, len(v))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			aux[j*rows+i] = v[i*cols+j]
		}
	}
	copy(v, aux)
}
