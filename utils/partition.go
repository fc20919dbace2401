package utils

import (
	"github.com/pkg/errors"
)

// ErrInvalidInput is returned when a size or worker count cannot be partitioned.
var ErrInvalidInput = errors.New("invalid input")

// Range is a half-open index interval [Start, End) assigned to a single worker.
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Partition splits [0, n) into k contiguous, disjoint ranges of n/k elements.
// The last range absorbs the remainder of the integer division.
// It requires k >= 1 and n >= k, so that no range is empty.
func Partition(n, k int) ([]Range, error) {
	if k < 1 {
		return nil, errors.Wrapf(ErrInvalidInput, "worker count must be at least 1, got %d", k)
	}
	if n < k {
		return nil, errors.Wrapf(ErrInvalidInput, "size %d is smaller than the worker count %d", n, k)
	}

	chunk := n / k
	ranges := make([]Range, k)
	for i := 0; i < k; i++ {
		start := i * chunk
		end := start + chunk
		if i == k-1 {
			end = n
		}
		ranges[i] = Range{Start: start, End: end}
	}
	return ranges, nil
}
