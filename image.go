package parbench

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultQuality is the JPEG quality used when none is configured.
const DefaultQuality = 95

// DecodeGrid decodes an image stream into an RGB grid. EXIF orientation is honoured.
// Any failure is reported as an *ImageDecodeError.
func DecodeGrid(r io.Reader, source string) (*Grid, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &ImageDecodeError{Source: source, Err: err}
	}
	return GridFromImage(img), nil
}

// LoadGrid opens and decodes the image file found at path.
func LoadGrid(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ImageDecodeError{Source: path, Err: err}
	}
	defer f.Close()

	return DecodeGrid(f, path)
}

// EncodeGrid encodes the grid into w, choosing the codec from the file extension.
// An empty extension falls back to JPEG.
func EncodeGrid(w io.Writer, ext string, g *Grid, quality int) error {
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	img := g.Image()

	switch strings.ToLower(ext) {
	case "", ".jpg", ".jpeg":
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(quality))
	case ".png":
		return imaging.Encode(w, img, imaging.PNG)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return errors.Errorf("unsupported image format %q", ext)
	}
}

// SaveGrid writes the grid to the file at path, creating or truncating it.
func SaveGrid(path string, g *Grid, quality int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "unable to create the destination file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := EncodeGrid(f, filepath.Ext(path), g, quality); err != nil {
		// remove the partially written image file in case of an error
		os.Remove(path)
		return errors.Wrapf(err, "could not encode %s", filepath.Base(path))
	}
	return nil
}
