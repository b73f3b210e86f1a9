// Package fork provides the single fork-join primitive every parallel
// site in the transpose engine goes through: run two independent thunks
// over disjoint sub-slices, either sequentially or concurrently depending
// on a caller-supplied size threshold.
//
// The concurrent path is built on golang.org/x/sync/errgroup in place of
// a bare sync.WaitGroup: gonum's fd package (fd/jacobian.go) joins a
// worker pool on a plain sync.WaitGroup, which has no way to carry an
// error out of a worker. errgroup.Group.Wait gives this primitive's two
// fixed tasks a single join point that would also propagate an error
// from either side, if a future collaborator strategy ever becomes
// fallible; today both tasks are infallible and Join always returns nil.
package fork

import "golang.org/x/sync/errgroup"

// Join runs left and right. If n is below threshold, it runs them
// sequentially in the calling goroutine; otherwise it runs them
// concurrently and blocks until both have returned. left and right must
// operate on disjoint sub-slices of the caller's buffer — Join performs
// no synchronization of its own beyond the join point.
func Join(n, threshold int, left, right func()) {
	if n < threshold {
		left()
		right()
		return
	}

	var g errgroup.Group
	g.Go(func() error {
		left()
		return nil
	})
	g.Go(func() error {
		right()
		return nil
	})
	_ = g.Wait() // left and right are infallible; error is always nil
}
