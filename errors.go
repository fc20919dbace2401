package parbench

import (
	"fmt"

	"github.com/esimov/parbench/utils"
)

// ErrInvalidInput is returned for unusable worker counts or grid shapes.
var ErrInvalidInput = utils.ErrInvalidInput

// ImageDecodeError reports that the source image could not be opened or decoded.
type ImageDecodeError struct {
	Source string
	Err    error
}

func (e *ImageDecodeError) Error() string {
	return fmt.Sprintf("could not load image %q: %v", e.Source, e.Err)
}

func (e *ImageDecodeError) Unwrap() error {
	return e.Err
}
