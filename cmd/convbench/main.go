package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/esimov/parbench"
	"github.com/esimov/parbench/utils"
)

const HelpBanner = `
┌─┐┌─┐┌┐┌┬  ┬┌┐ ┌─┐┌┐┌┌─┐┬ ┬
│  │ ││││└┐┌┘├┴┐├┤ ││││  ├─┤
└─┘└─┘┘└┘ └┘ └─┘└─┘┘└┘└─┘┴ ┴

Serial vs. parallel image convolution benchmark.
    Version: %s

`

// pipeName is the file name that indicates stdin is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", "input.jpg", "Source image (file path, URL or - for stdin)")
	destination = flag.String("out", ".", "Destination directory")
	workers     = flag.Int("workers", runtime.NumCPU(), "Number of parallel workers")
	quality     = flag.Int("quality", parbench.DefaultQuality, "JPEG quality of the generated images")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *workers < 1 {
		log.Fatal(utils.DecorateFor(os.Stderr, "the number of workers should be at least 1", utils.ErrorMessage))
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ CONVBENCH", utils.StatusMessage),
		utils.DecorateText("is filtering the image...", utils.DefaultMessage))

	proc := &parbench.Processor{
		Workers: *workers,
		Quality: *quality,
	}
	if utils.IsTerminal(os.Stderr) {
		proc.Spinner = utils.NewSpinner(os.Stderr, spinnerText, time.Millisecond*100)

		// Capture CTRL-C signal and restore the cursor visibility back.
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-signalChan
			proc.Spinner.RestoreCursor()
			os.Exit(1)
		}()
	}

	fmt.Fprintf(os.Stderr, "%s\n", utils.DecorateFor(os.Stderr, utils.CPUInfo(), utils.DefaultMessage))

	now := time.Now()
	err := proc.Execute(&parbench.Ops{
		Src:      *source,
		Dst:      *destination,
		PipeName: pipeName,
		Stdout:   os.Stdout,
	})
	if err != nil {
		log.Fatal(errorMessage(os.Stderr, err))
	}
	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", utils.DecorateFor(os.Stderr, utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// errorMessage formats err for w, coloured only when w is a terminal.
func errorMessage(w io.Writer, err error) string {
	return utils.DecorateFor(w, "Error: ", utils.ErrorMessage) +
		utils.DecorateFor(w, err.Error(), utils.DefaultMessage)
}
