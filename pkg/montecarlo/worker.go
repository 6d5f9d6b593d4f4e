package montecarlo

import (
	"context"

	"github.com/buildbarn/bb-montecarlo/pkg/random"
	"github.com/buildbarn/bb-montecarlo/pkg/util"
)

// Worker runs batches of trials against its own generator, merging
// every batch into a shared Accumulator.
type Worker struct {
	generator   random.SingleThreadedGenerator
	trial       Trial
	batchSize   int64
	accumulator Accumulator
}

// NewWorker creates a Worker. The generator is owned by the Worker
// from this point on, and may not be used by anything else.
func NewWorker(generator random.SingleThreadedGenerator, trial Trial, batchSize int64, accumulator Accumulator) *Worker {
	return &Worker{
		generator:   generator,
		trial:       trial,
		batchSize:   batchSize,
		accumulator: accumulator,
	}
}

// RunBatch runs a single batch of trials. It does not touch any shared
// state.
func (w *Worker) RunBatch() Batch {
	batch := Batch{Trials: w.batchSize}
	for t := int64(0); t < w.batchSize; t++ {
		x := w.trial(w.generator)
		batch.Sum += x
		batch.SumOfSquares += x * x
	}
	return batch
}

// Run batches until the Accumulator reports that the run has
// terminated. The context is only checked in between batches, so that
// every batch that was started is also merged. The number of batches
// run is returned, even if the context got canceled.
func (w *Worker) Run(ctx context.Context) (int64, error) {
	for batches := int64(1); ; batches++ {
		if w.accumulator.Merge(w.RunBatch()) {
			return batches, nil
		}
		if ctx.Err() != nil {
			return batches, util.StatusFromContext(ctx)
		}
	}
}
