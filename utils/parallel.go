package utils

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// ForkJoin runs fn once per range, each on its own goroutine, and blocks
// until every call has returned. The index i identifies the range so that
// callers can write into a private result slot without locking.
// The first non-nil error is returned after all workers are joined.
func ForkJoin(ranges []Range, fn func(i int, r Range) error) error {
	var g errgroup.Group
	for i, r := range ranges {
		i, r := i, r
		g.Go(func() error {
			return fn(i, r)
		})
	}
	return g.Wait()
}

// ParallelFor splits [0, n) into at most workers contiguous ranges and
// processes them concurrently. When n is smaller than the worker count only
// n workers are started. A zero n is a no-op.
func ParallelFor(workers, n int, fn func(i int, r Range) error) error {
	if workers < 1 {
		return errors.Wrapf(ErrInvalidInput, "worker count must be at least 1, got %d", workers)
	}
	if n <= 0 {
		return nil
	}
	ranges, err := Partition(n, Min(workers, n))
	if err != nil {
		return err
	}
	return ForkJoin(ranges, fn)
}
