package montecarlo

import (
	"context"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/buildbarn/bb-montecarlo/pkg/clock"
	"github.com/buildbarn/bb-montecarlo/pkg/program"
)

// ProgressReporter periodically logs the state of an Accumulator while
// an estimation run is in progress.
type ProgressReporter struct {
	accumulator Accumulator
	clock       clock.Clock
	interval    time.Duration
}

// NewProgressReporter creates a ProgressReporter that logs once per
// interval.
func NewProgressReporter(accumulator Accumulator, clock clock.Clock, interval time.Duration) *ProgressReporter {
	return &ProgressReporter{
		accumulator: accumulator,
		clock:       clock,
		interval:    interval,
	}
}

// Run the ProgressReporter until the context is canceled. It has the
// signature of a program.Routine, so that it can be launched as a
// dependency of the workers.
func (pr *ProgressReporter) Run(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
	ticker, tickerChannel := pr.clock.NewTicker(pr.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tickerChannel:
			aggregate, done := pr.accumulator.Snapshot()
			if aggregate.Trials == 0 {
				continue
			}
			mean := aggregate.Mean()
			standardError := aggregate.StandardError()
			// The relative error is undefined for a zero mean.
			relativeError := "undefined"
			if mean != 0 {
				relativeError = strconv.FormatFloat(standardError/math.Abs(mean), 'g', -1, 64)
			}
			log.Printf(
				"Progress: %d trials, mean %g, standard error %g, relative error %s, terminated %t",
				aggregate.Trials,
				mean,
				standardError,
				relativeError,
				done)
		}
	}
}
