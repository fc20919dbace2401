package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/esimov/parbench/reduce"
	"github.com/esimov/parbench/utils"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

const HelpBanner = `
┌─┐┬─┐┬─┐┌─┐┬ ┬┌┐ ┌─┐┌┐┌┌─┐┬ ┬
├─┤├┬┘├┬┘├─┤└┬┘├┴┐├┤ ││││  ├─┤
┴ ┴┴└─┴└─┴ ┴ ┴ └─┘└─┘┘└┘└─┘┴ ┴

Sequential vs. multi-threaded array sum and search benchmark.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	size    = flag.Int("n", 0, "Array size (prompted when not set)")
	key     = flag.String("key", "", "Key to search (prompted when not set)")
	workers = flag.Int("workers", reduce.DefaultWorkers, "Number of worker goroutines")
	seed    = flag.Uint64("seed", 0, "Random seed, 0 seeds from the current time")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	in := bufio.NewReader(os.Stdin)

	n := *size
	if n == 0 {
		v, err := prompt(in, os.Stderr, "Enter array size: ")
		if err != nil {
			fatal(err)
		}
		n = v
	}

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	a := reduce.Generate(rand.New(rand.NewSource(s)), n)

	var k int
	if *key == "" {
		v, err := prompt(in, os.Stderr, "Enter key to search: ")
		if err != nil {
			fatal(err)
		}
		k = v
	} else {
		v, err := strconv.Atoi(*key)
		if err != nil {
			fatal(errors.Wrapf(reduce.ErrInvalidInput, "key %q is not an integer", *key))
		}
		k = v
	}

	fmt.Fprintf(os.Stderr, "%s\n", utils.DecorateFor(os.Stderr, utils.CPUInfo(), utils.DefaultMessage))

	rep, err := (&reduce.Bench{Workers: *workers}).Run(a, k)
	if err != nil {
		fatal(err)
	}
	rep.Print(os.Stdout, utils.IsTerminal(os.Stdout))

	if !rep.Consistent() {
		fatal(errors.New("sequential and threaded results differ"))
	}
}

// prompt writes question to w and reads a single integer from r.
// main passes os.Stderr so the report on stdout stays clean when piped.
func prompt(r *bufio.Reader, w io.Writer, question string) (int, error) {
	fmt.Fprint(w, question)
	line, err := r.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return 0, errors.Wrapf(reduce.ErrInvalidInput, "could not read %q", strings.TrimSuffix(question, ": "))
	}
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, errors.Wrapf(reduce.ErrInvalidInput, "%q is not an integer", strings.TrimSpace(line))
	}
	return v, nil
}

func fatal(err error) {
	log.Fatal(errorMessage(os.Stderr, err))
}

// errorMessage formats err for w, coloured only when w is a terminal.
func errorMessage(w io.Writer, err error) string {
	return utils.DecorateFor(w, "Error: ", utils.ErrorMessage) +
		utils.DecorateFor(w, err.Error(), utils.DefaultMessage)
}
