package parbench

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSobelX_IsolatedCentreHasNoGradient(t *testing.T) {
	gray := &Grid{Width: 3, Height: 3, Channels: 1, Pix: []uint8{
		0, 0, 0,
		0, 255, 0,
		0, 0, 0,
	}}
	dst, err := SobelXParallel(gray, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 0, dst.At(1, 1, 0))
}

func TestSobelX_AdjacentBrightPixelSaturates(t *testing.T) {
	right := &Grid{Width: 3, Height: 3, Channels: 1, Pix: []uint8{
		0, 0, 0,
		0, 0, 255,
		0, 0, 0,
	}}
	dst, err := SobelXParallel(right, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 255, dst.At(1, 1, 0))

	// A negative gradient yields the same magnitude.
	left := &Grid{Width: 3, Height: 3, Channels: 1, Pix: []uint8{
		0, 0, 0,
		255, 0, 0,
		0, 0, 0,
	}}
	dst, err = SobelXParallel(left, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 255, dst.At(1, 1, 0))
}

func TestSobelX_VerticalStep(t *testing.T) {
	// Columns: 0 0 10 10 10, so only column 1 and 2 see a gradient of 4*10.
	gray := &Grid{Width: 5, Height: 4, Channels: 1, Pix: make([]uint8, 20)}
	for y := 0; y < gray.Height; y++ {
		for x := 2; x < gray.Width; x++ {
			gray.Set(x, y, 0, 10)
		}
	}
	dst, err := SobelXParallel(gray, 2)
	require.NoError(t, err)

	for y := 1; y < gray.Height-1; y++ {
		assert.EqualValues(t, 40, dst.At(1, y, 0))
		assert.EqualValues(t, 40, dst.At(2, y, 0))
		assert.EqualValues(t, 0, dst.At(3, y, 0))
	}
}

func TestSobelX_WorkerCountDoesNotMatter(t *testing.T) {
	gray := patternGrid(33, 21, 1)
	want, err := SobelXParallel(gray, 1)
	require.NoError(t, err)
	for _, workers := range []int{2, 3, 5, 19, 50} {
		got, err := SobelXParallel(gray, workers)
		require.NoError(t, err)
		assert.True(t, want.Equal(got), "workers=%d", workers)
	}
}

func TestSobelX_RejectsColorGrid(t *testing.T) {
	_, err := SobelXParallel(patternGrid(4, 4, 3), 2)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestEdges_UniformImage(t *testing.T) {
	src := uniformGrid(9, 7, 3, 120)
	dst, err := EdgesParallel(src, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, dst.Channels)

	for y := 0; y < dst.Height; y++ {
		for x := 0; x < dst.Width; x++ {
			border := x == 0 || y == 0 || x == dst.Width-1 || y == dst.Height-1
			if border {
				assert.EqualValues(t, 120, dst.At(x, y, 0))
			} else {
				assert.EqualValues(t, 0, dst.At(x, y, 0))
			}
		}
	}
}
