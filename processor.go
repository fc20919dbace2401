package parbench

import (
	"os"
	"path/filepath"
	"time"

	"github.com/esimov/parbench/utils"
	"github.com/pkg/errors"
)

// Names of the generated images.
const (
	BlurSerialFile   = "blur_serial.jpg"
	BlurParallelFile = "blur_parallel.jpg"
	SharpenFile      = "sharpen.jpg"
	EdgesFile        = "edges.jpg"
)

// Processor options
type Processor struct {
	// Workers is the number of goroutines used by the parallel filters.
	Workers int
	// Quality is the JPEG encoding quality in (0, 100].
	Quality int
	Spinner *utils.Spinner
}

// Result holds the four filtered grids and the blur timings.
type Result struct {
	BlurSerial   *Grid
	BlurParallel *Grid
	Sharpen      *Grid
	Edges        *Grid

	SerialBlurTime   time.Duration
	ParallelBlurTime time.Duration
}

// Speedup returns the serial blur time divided by the parallel blur time,
// or 0 when the parallel run was too fast to be measured.
func (r *Result) Speedup() float64 {
	return utils.Ratio(r.SerialBlurTime, r.ParallelBlurTime)
}

// Filter runs the serial blur, the parallel blur, the parallel sharpen and the
// parallel edge detection over src. Only the two blur passes are timed.
func (p *Processor) Filter(src *Grid) (*Result, error) {
	if p.Workers < 1 {
		return nil, errors.Wrapf(ErrInvalidInput, "worker count must be at least 1, got %d", p.Workers)
	}

	var (
		res = &Result{}
		err error
	)

	start := time.Now()
	res.BlurSerial = Blur(src)
	res.SerialBlurTime = time.Since(start)

	start = time.Now()
	res.BlurParallel, err = BlurParallel(src, p.Workers)
	res.ParallelBlurTime = time.Since(start)
	if err != nil {
		return nil, errors.Wrap(err, "parallel blur failed")
	}

	if res.Sharpen, err = SharpenParallel(src, p.Workers); err != nil {
		return nil, errors.Wrap(err, "sharpen failed")
	}
	if res.Edges, err = EdgesParallel(src, p.Workers); err != nil {
		return nil, errors.Wrap(err, "edge detection failed")
	}
	return res, nil
}

// Save writes the four result images into dir, creating it when missing.
// It returns the paths of the written files.
func (p *Processor) Save(res *Result, dir string) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(err, "unable to create the destination directory")
	}

	outputs := []struct {
		name string
		grid *Grid
	}{
		{BlurSerialFile, res.BlurSerial},
		{BlurParallelFile, res.BlurParallel},
		{SharpenFile, res.Sharpen},
		{EdgesFile, res.Edges},
	}

	paths := make([]string, 0, len(outputs))
	for _, out := range outputs {
		path := filepath.Join(dir, out.name)
		if err := SaveGrid(path, out.grid, p.Quality); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
