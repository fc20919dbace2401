package parbench

import (
	"math"

	"github.com/esimov/parbench/utils"
)

// Convolve applies the 3x3 kernel to every interior pixel and channel of src
// on the calling goroutine. The border rows and columns are copied from src.
func Convolve(src *Grid, k Kernel) *Grid {
	dst := src.Clone()
	if interiorRows(src) > 0 {
		convolveRows(dst, src, &k, utils.Range{Start: 1, End: src.Height - 1})
	}
	return dst
}

// ConvolveParallel computes the same result as Convolve, splitting the interior
// rows into contiguous bands, one per worker. Every worker writes only its own
// rows of the destination, so the output is identical for any worker count.
func ConvolveParallel(src *Grid, k Kernel, workers int) (*Grid, error) {
	dst := src.Clone()
	err := forEachInteriorBand(src, workers, func(rows utils.Range) {
		convolveRows(dst, src, &k, rows)
	})
	if err != nil {
		return nil, err
	}
	return dst, nil
}

// Blur smooths src with the uniform 3x3 box filter.
func Blur(src *Grid) *Grid {
	return Convolve(src, BlurKernel)
}

// BlurParallel is the concurrent counterpart of Blur.
func BlurParallel(src *Grid, workers int) (*Grid, error) {
	return ConvolveParallel(src, BlurKernel, workers)
}

// SharpenParallel accentuates edges using the 3x3 sharpen kernel.
func SharpenParallel(src *Grid, workers int) (*Grid, error) {
	return ConvolveParallel(src, SharpenKernel, workers)
}

// convolveRows processes the interior columns of the given rows.
// The rows must lie inside [1, Height-1).
func convolveRows(dst, src *Grid, k *Kernel, rows utils.Range) {
	var (
		w      = src.Width
		ch     = src.Channels
		stride = src.Stride()
	)

	for y := rows.Start; y < rows.End; y++ {
		for x := 1; x < w-1; x++ {
			for c := 0; c < ch; c++ {
				var sum float64
				for ky := -1; ky <= 1; ky++ {
					row := (y+ky)*stride + c
					for kx := -1; kx <= 1; kx++ {
						sum += float64(src.Pix[row+(x+kx)*ch]) * k[ky+1][kx+1]
					}
				}
				dst.Pix[y*stride+x*ch+c] = saturate(sum)
			}
		}
	}
}

// forEachInteriorBand partitions the interior rows of g into at most workers
// bands and runs fn concurrently on each of them.
func forEachInteriorBand(g *Grid, workers int, fn func(rows utils.Range)) error {
	return utils.ParallelFor(workers, interiorRows(g), func(_ int, r utils.Range) error {
		// Shift the band past the top border row.
		fn(utils.Range{Start: r.Start + 1, End: r.End + 1})
		return nil
	})
}

// interiorRows returns the number of rows with a full 3x3 neighbourhood.
// Grids narrower or shorter than 3 pixels have no interior.
func interiorRows(g *Grid) int {
	if g.Width < 3 || g.Height < 3 {
		return 0
	}
	return g.Height - 2
}

// saturate rounds v to the nearest integer (ties to even) and clamps it to [0, 255].
func saturate(v float64) uint8 {
	return uint8(utils.Clamp(math.RoundToEven(v), 0, 255))
}
