package parbench

import (
	"math"
)

// Grayscale converts the grid to a single channel intensity grid using the
// ITU-R BT.601 luma weights. A single channel grid is returned as a copy.
func Grayscale(src *Grid) *Grid {
	if src.Channels == 1 {
		return src.Clone()
	}

	dst := &Grid{
		Width:    src.Width,
		Height:   src.Height,
		Channels: 1,
		Pix:      make([]uint8, src.Width*src.Height),
	}
	for i, j := 0, 0; j < len(dst.Pix); i, j = i+src.Channels, j+1 {
		r, g, b := src.Pix[i], src.Pix[i+1], src.Pix[i+2]
		lum := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
		dst.Pix[j] = uint8(math.Min(math.Round(lum), 255))
	}
	return dst
}
