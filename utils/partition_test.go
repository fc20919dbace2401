package utils

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition_Example(t *testing.T) {
	ranges, err := Partition(8, 4)
	require.NoError(t, err)

	want := []Range{{0, 2}, {2, 4}, {4, 6}, {6, 8}}
	if diff := cmp.Diff(want, ranges); diff != "" {
		t.Errorf("Partition(8, 4) mismatch (-want +got):\n%s", diff)
	}
}

func TestPartition_LastRangeAbsorbsRemainder(t *testing.T) {
	ranges, err := Partition(10, 4)
	require.NoError(t, err)

	want := []Range{{0, 2}, {2, 4}, {4, 6}, {6, 10}}
	if diff := cmp.Diff(want, ranges); diff != "" {
		t.Errorf("Partition(10, 4) mismatch (-want +got):\n%s", diff)
	}
}

func TestPartition_Coverage(t *testing.T) {
	for n := 1; n <= 64; n++ {
		for k := 1; k <= n; k++ {
			ranges, err := Partition(n, k)
			require.NoError(t, err)
			require.Len(t, ranges, k)

			next := 0
			for _, r := range ranges {
				if r.Start != next {
					t.Fatalf("n=%d k=%d: gap or overlap at %d, range %+v", n, k, next, r)
				}
				if r.Len() < 1 {
					t.Fatalf("n=%d k=%d: empty range %+v", n, k, r)
				}
				next = r.End
			}
			assert.Equal(t, n, next, "n=%d k=%d", n, k)
		}
	}
}

func TestPartition_InvalidInput(t *testing.T) {
	_, err := Partition(10, 0)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = Partition(3, 4)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = Partition(0, 1)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
