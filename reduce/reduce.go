package reduce

import (
	"github.com/esimov/parbench/utils"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

// MaxValue is the exclusive upper bound of the generated values.
const MaxValue = 100000

// ErrInvalidInput is returned when the buffer cannot be split between the workers.
var ErrInvalidInput = utils.ErrInvalidInput

// Generate returns n values drawn from [0, MaxValue) using r.
// Passing a generator with a fixed seed makes the buffer reproducible.
func Generate(r *rand.Rand, n int) []int {
	if n <= 0 {
		return []int{}
	}
	a := make([]int, n)
	for i := range a {
		a[i] = r.Intn(MaxValue)
	}
	return a
}

// SequentialSum adds the elements from left to right.
func SequentialSum(a []int) int64 {
	var sum int64
	for _, v := range a {
		sum += int64(v)
	}
	return sum
}

// SequentialSearch reports whether key is present, stopping at the first match.
func SequentialSearch(a []int, key int) bool {
	for _, v := range a {
		if v == key {
			return true
		}
	}
	return false
}

// PartitionedSum splits a into workers contiguous partitions and sums them concurrently.
// It requires 1 <= workers <= len(a).
func PartitionedSum(a []int, workers int) (int64, error) {
	ranges, err := utils.Partition(len(a), workers)
	if err != nil {
		return 0, errors.Wrap(err, "cannot partition the buffer")
	}

	partials := make([]int64, len(ranges))
	err = utils.ForkJoin(ranges, func(i int, r utils.Range) error {
		partials[i] = SequentialSum(a[r.Start:r.End])
		return nil
	})
	if err != nil {
		return 0, err
	}
	return lo.Sum(partials), nil
}

// PartitionedSearch scans the partitions of a concurrently. A worker stops as
// soon as it finds the key in its own partition, but the others are not
// interrupted. It requires 1 <= workers <= len(a).
func PartitionedSearch(a []int, key, workers int) (bool, error) {
	ranges, err := utils.Partition(len(a), workers)
	if err != nil {
		return false, errors.Wrap(err, "cannot partition the buffer")
	}

	found := make([]bool, len(ranges))
	err = utils.ForkJoin(ranges, func(i int, r utils.Range) error {
		found[i] = SequentialSearch(a[r.Start:r.End], key)
		return nil
	})
	if err != nil {
		return false, err
	}
	return lo.Contains(found, true), nil
}
