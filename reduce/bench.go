package reduce

import (
	"fmt"
	"io"
	"time"

	"github.com/esimov/parbench/utils"
	"github.com/pkg/errors"
)

// DefaultWorkers is the worker count used when none is configured.
const DefaultWorkers = 4

// Bench runs both reduction strategies over the same buffer.
type Bench struct {
	Workers int
}

// Report holds the results and timings of one benchmark run.
type Report struct {
	Size    int
	Key     int
	Workers int

	SeqSum   int64
	SeqFound bool
	SeqTime  time.Duration

	ParSum   int64
	ParFound bool
	ParTime  time.Duration
}

// Run measures the sequential phase (sum and search) and then the parallel
// phase, including the cost of starting and joining the workers.
func (b *Bench) Run(a []int, key int) (*Report, error) {
	workers := b.Workers
	if workers == 0 {
		workers = DefaultWorkers
	}
	if workers < 1 || len(a) < workers {
		return nil, errors.Wrapf(ErrInvalidInput,
			"array size %d must be at least the number of workers %d", len(a), workers)
	}

	rep := &Report{Size: len(a), Key: key, Workers: workers}

	start := time.Now()
	rep.SeqSum = SequentialSum(a)
	rep.SeqFound = SequentialSearch(a, key)
	rep.SeqTime = time.Since(start)

	var err error
	start = time.Now()
	if rep.ParSum, err = PartitionedSum(a, workers); err != nil {
		return nil, err
	}
	if rep.ParFound, err = PartitionedSearch(a, key, workers); err != nil {
		return nil, err
	}
	rep.ParTime = time.Since(start)

	return rep, nil
}

// Speedup is the sequential time divided by the parallel time.
// It is 0 when the parallel phase was too short to be measured.
func (r *Report) Speedup() float64 {
	return utils.Ratio(r.SeqTime, r.ParTime)
}

// Efficiency is the speedup divided by the number of workers.
func (r *Report) Efficiency() float64 {
	if r.Workers == 0 {
		return 0
	}
	return r.Speedup() / float64(r.Workers)
}

// Consistent reports whether both strategies agree on the sum and the search result.
func (r *Report) Consistent() bool {
	return r.SeqSum == r.ParSum && r.SeqFound == r.ParFound
}

// Print writes the human readable report to w. Section titles are
// colored when color is set.
func (r *Report) Print(w io.Writer, color bool) {
	title := func(s string) string {
		if color {
			return utils.DecorateText(s, utils.StatusMessage)
		}
		return s
	}
	yesNo := func(b bool) string {
		if b {
			return "Yes"
		}
		return "No"
	}

	fmt.Fprintf(w, "\n%s\n", title("--- Sequential Results ---"))
	fmt.Fprintf(w, "Sum = %d\n", r.SeqSum)
	fmt.Fprintf(w, "Key Found = %s\n", yesNo(r.SeqFound))
	fmt.Fprintf(w, "Execution Time = %s\n", utils.FormatTime(r.SeqTime))

	fmt.Fprintf(w, "\n%s\n", title(fmt.Sprintf("--- Threaded Results (%d workers) ---", r.Workers)))
	fmt.Fprintf(w, "Sum = %d\n", r.ParSum)
	fmt.Fprintf(w, "Key Found = %s\n", yesNo(r.ParFound))
	fmt.Fprintf(w, "Execution Time = %s\n", utils.FormatTime(r.ParTime))

	fmt.Fprintf(w, "\nSpeedup = %.4f\n", r.Speedup())
	fmt.Fprintf(w, "Efficiency = %.4f\n", r.Efficiency())
}
