package montecarlo

import (
	"context"
	"time"

	"github.com/buildbarn/bb-montecarlo/pkg/clock"
	"github.com/buildbarn/bb-montecarlo/pkg/program"
	"github.com/buildbarn/bb-montecarlo/pkg/random"
	"github.com/buildbarn/bb-montecarlo/pkg/util"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/buildbarn/bb-montecarlo/pkg/montecarlo")

// Estimate is the outcome of an estimation run.
type Estimate struct {
	Mean          float64
	Variance      float64
	StandardError float64
	Trials        int64

	Workers          int
	BatchesPerWorker []int64
	// Wall clock time of the parallel phase, excluding seed minting.
	Elapsed time.Duration
}

// Estimator runs a fixed-size pool of workers until an Accumulator
// reports that the estimate has converged.
type Estimator struct {
	parameters             Parameters
	seedMint               *random.SeedMint
	deviateSourceFactory   random.DeviateSourceFactory
	trial                  Trial
	accumulator            Accumulator
	clock                  clock.Clock
	progressReportInterval time.Duration
}

// NewEstimator creates an Estimator. The Accumulator must be empty, and
// is consumed by a single call to Estimate(). A zero progress report
// interval disables progress reporting.
func NewEstimator(parameters Parameters, seedMint *random.SeedMint, deviateSourceFactory random.DeviateSourceFactory, trial Trial, accumulator Accumulator, clock clock.Clock, progressReportInterval time.Duration) *Estimator {
	return &Estimator{
		parameters:             parameters,
		seedMint:               seedMint,
		deviateSourceFactory:   deviateSourceFactory,
		trial:                  trial,
		accumulator:            accumulator,
		clock:                  clock,
		progressReportInterval: progressReportInterval,
	}
}

// Estimate the expectation of the trial. Parameters are validated and
// seeds are minted before any of the workers is launched, meaning
// that no trials are run if either of those fails.
func (e *Estimator) Estimate(ctx context.Context) (*Estimate, error) {
	if err := e.parameters.Validate(); err != nil {
		return nil, util.StatusWrap(err, "Invalid parameters")
	}
	workersCount := e.parameters.GetWorkersCount()

	ctx, span := tracer.Start(ctx, "Estimator.Estimate", trace.WithAttributes(
		attribute.Float64("relative_tolerance", e.parameters.RelativeTolerance),
		attribute.Int64("maximum_trials", e.parameters.MaximumTrials),
		attribute.Int64("batch_size", e.parameters.BatchSize),
		attribute.Int("workers", workersCount),
	))
	defer span.End()

	generators := make([]random.SingleThreadedGenerator, 0, workersCount)
	for i := 0; i < workersCount; i++ {
		seed, err := e.seedMint.NextSeed()
		if err != nil {
			err = util.StatusWrapf(err, "Failed to mint seed for worker %d", i)
			util.RecordError(ctx, err)
			return nil, err
		}
		generators = append(generators, e.deviateSourceFactory(seed))
	}

	batchesPerWorker := make([]int64, workersCount)
	timeStart := e.clock.Now()
	if err := program.RunLocal(ctx, func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
		if e.progressReportInterval > 0 {
			dependenciesGroup.Go(NewProgressReporter(e.accumulator, e.clock, e.progressReportInterval).Run)
		}
		for i, generator := range generators {
			worker := NewWorker(generator, e.trial, e.parameters.BatchSize, e.accumulator)
			siblingsGroup.Go(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
				batches, err := worker.Run(ctx)
				batchesPerWorker[i] = batches
				if err != nil {
					return util.StatusWrapf(err, "Worker %d", i)
				}
				return nil
			})
		}
		return nil
	}); err != nil {
		util.RecordError(ctx, err)
		return nil, err
	}
	elapsed := e.clock.Now().Sub(timeStart)

	aggregate, _ := e.accumulator.Snapshot()
	estimate := &Estimate{
		Mean:             aggregate.Mean(),
		Variance:         aggregate.Variance(),
		StandardError:    aggregate.StandardError(),
		Trials:           aggregate.Trials,
		Workers:          workersCount,
		BatchesPerWorker: batchesPerWorker,
		Elapsed:          elapsed,
	}
	span.SetAttributes(
		attribute.Int64("trials", estimate.Trials),
		attribute.Float64("mean", estimate.Mean),
		attribute.Float64("standard_error", estimate.StandardError))
	return estimate, nil
}
