package parbench

import (
	"github.com/esimov/parbench/utils"
	"github.com/pkg/errors"
)

// SobelXParallel computes the absolute horizontal gradient of a single channel
// grid, clamped to [0, 255]. Border pixels keep their gray value.
func SobelXParallel(gray *Grid, workers int) (*Grid, error) {
	if gray.Channels != 1 {
		return nil, errors.Wrapf(ErrInvalidInput, "sobel filter expects a grayscale grid, got %d channels", gray.Channels)
	}

	dst := gray.Clone()
	err := forEachInteriorBand(gray, workers, func(rows utils.Range) {
		sobelRows(dst, gray, &SobelXKernel, rows)
	})
	if err != nil {
		return nil, err
	}
	return dst, nil
}

// EdgesParallel converts src to grayscale and returns its Sobel-X edge magnitude.
func EdgesParallel(src *Grid, workers int) (*Grid, error) {
	return SobelXParallel(Grayscale(src), workers)
}

func sobelRows(dst, src *Grid, k *IntKernel, rows utils.Range) {
	w := src.Width
	for y := rows.Start; y < rows.End; y++ {
		for x := 1; x < w-1; x++ {
			var gx int
			for ky := -1; ky <= 1; ky++ {
				row := (y + ky) * w
				for kx := -1; kx <= 1; kx++ {
					gx += int(src.Pix[row+x+kx]) * k[ky+1][kx+1]
				}
			}
			dst.Pix[y*w+x] = uint8(utils.Min(utils.Abs(gx), 255))
		}
	}
}
