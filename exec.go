package parbench

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/esimov/parbench/utils"
	"github.com/pkg/errors"
)

// Ops describes where the benchmark reads its input and writes its results.
type Ops struct {
	// Src is a file path, an http(s) URL or PipeName for stdin.
	Src string
	// Dst is the directory receiving the generated images.
	Dst      string
	PipeName string
	// Stdout receives the progress and timing lines. Defaults to os.Stdout.
	Stdout io.Writer
	// Stdin is read when Src equals PipeName. Defaults to os.Stdin.
	Stdin io.Reader
}

// Execute runs the whole convolution benchmark: it loads the source image,
// applies the filters, reports the timings and saves the resulting images.
func (p *Processor) Execute(op *Ops) error {
	out := op.Stdout
	if out == nil {
		out = os.Stdout
	}
	decorate := func(s string, msgType utils.MessageType) string {
		return utils.DecorateFor(out, s, msgType)
	}

	src, closeFn, err := op.openSource()
	if err != nil {
		return err
	}
	grid, err := DecodeGrid(src, op.Src)
	closeFn()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s (%dx%d)\n", decorate("Image loaded successfully!", utils.SuccessMessage), grid.Width, grid.Height)

	if p.Spinner != nil {
		p.Spinner.Start()
	}
	res, err := p.Filter(grid)
	if p.Spinner != nil {
		p.Spinner.Stop()
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Serial Blur Time: %s\n", utils.FormatTime(res.SerialBlurTime))
	fmt.Fprintf(out, "Parallel Blur Time: %s (%d workers)\n", utils.FormatTime(res.ParallelBlurTime), p.Workers)
	fmt.Fprintf(out, "Speedup: %s\n", decorate(fmt.Sprintf("%.2f", res.Speedup()), utils.StatusMessage))
	fmt.Fprintln(out, "Sharpening completed.")
	fmt.Fprintln(out, "Edge Detection completed.")

	paths, err := p.Save(res, op.Dst)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, decorate("All images saved successfully!", utils.SuccessMessage))
	for _, path := range paths {
		fmt.Fprintf(out, "\t%s\n", path)
	}
	return nil
}

// openSource resolves the source into a readable stream. The returned
// function releases the stream and any temporary file backing it.
func (op *Ops) openSource() (io.Reader, func(), error) {
	// Check if the source path is a remote image.
	if utils.IsValidUrl(op.Src) {
		f, err := utils.DownloadImage(op.Src)
		if err != nil {
			return nil, nil, &ImageDecodeError{Source: op.Src, Err: err}
		}
		return f, func() {
			closeFile(f)
			os.Remove(f.Name())
		}, nil
	}

	// Check if the source is a pipe name or a regular file.
	if op.Src == op.PipeName && op.PipeName != "" {
		var stdin io.Reader = os.Stdin
		if op.Stdin != nil {
			stdin = op.Stdin
		}
		if utils.IsTerminal(stdin) {
			return nil, nil, &ImageDecodeError{
				Source: op.Src,
				Err:    errors.New("`-` should be used with a pipe for stdin"),
			}
		}
		return stdin, func() {}, nil
	}

	f, err := os.Open(op.Src)
	if err != nil {
		return nil, nil, &ImageDecodeError{Source: op.Src, Err: err}
	}
	return f, func() { closeFile(f) }, nil
}

func closeFile(f *os.File) {
	if err := f.Close(); err != nil {
		log.Printf("could not close the opened file: %v", err)
	}
}
