package parbench

import (
	"bytes"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Grid is a row-major, channel-interleaved pixel buffer with 1 (gray) or 3 (RGB) channels.
type Grid struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// NewGrid allocates a zeroed grid of the given shape.
func NewGrid(width, height, channels int) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "negative grid size %dx%d", width, height)
	}
	if channels != 1 && channels != 3 {
		return nil, errors.Wrapf(ErrInvalidInput, "unsupported channel count %d", channels)
	}
	return &Grid{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]uint8, width*height*channels),
	}, nil
}

// Stride returns the number of bytes between two vertically adjacent pixels.
func (g *Grid) Stride() int {
	return g.Width * g.Channels
}

// Offset returns the index of channel c of the pixel at (x, y).
func (g *Grid) Offset(x, y, c int) int {
	return y*g.Stride() + x*g.Channels + c
}

// At returns channel c of the pixel at (x, y).
func (g *Grid) At(x, y, c int) uint8 {
	return g.Pix[g.Offset(x, y, c)]
}

// Set assigns channel c of the pixel at (x, y).
func (g *Grid) Set(x, y, c int, v uint8) {
	g.Pix[g.Offset(x, y, c)] = v
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	dst := &Grid{
		Width:    g.Width,
		Height:   g.Height,
		Channels: g.Channels,
		Pix:      make([]uint8, len(g.Pix)),
	}
	copy(dst.Pix, g.Pix)
	return dst
}

// Equal reports whether both grids have the same shape and identical pixels.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.Width != o.Width || g.Height != o.Height || g.Channels != o.Channels {
		return false
	}
	return bytes.Equal(g.Pix, o.Pix)
}

// GridFromImage converts any image to a 3-channel RGB grid with origin at (0, 0).
// The alpha channel is discarded.
func GridFromImage(img image.Image) *Grid {
	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	g := &Grid{
		Width:    w,
		Height:   h,
		Channels: 3,
		Pix:      make([]uint8, w*h*3),
	}

	for y := 0; y < h; y++ {
		si := src.PixOffset(0, y)
		di := y * g.Stride()
		for x := 0; x < w; x++ {
			g.Pix[di+0] = src.Pix[si+0]
			g.Pix[di+1] = src.Pix[si+1]
			g.Pix[di+2] = src.Pix[si+2]
			si += 4
			di += 3
		}
	}
	return g
}

// Image converts the grid back into an image: *image.Gray for one channel
// and an opaque *image.NRGBA for three channels.
func (g *Grid) Image() image.Image {
	rect := image.Rect(0, 0, g.Width, g.Height)
	if g.Channels == 1 {
		dst := image.NewGray(rect)
		for y := 0; y < g.Height; y++ {
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+g.Width], g.Pix[y*g.Width:(y+1)*g.Width])
		}
		return dst
	}

	dst := image.NewNRGBA(rect)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i := g.Offset(x, y, 0)
			dst.SetNRGBA(x, y, color.NRGBA{
				R: g.Pix[i],
				G: g.Pix[i+1],
				B: g.Pix[i+2],
				A: 0xff,
			})
		}
	}
	return dst
}
