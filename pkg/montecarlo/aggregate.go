package montecarlo

import (
	"math"
)

// Batch of trial outcomes produced by a single worker without any
// synchronization. It is merged into the Aggregate as a single unit.
type Batch struct {
	Sum          float64
	SumOfSquares float64
	Trials       int64
}

// Aggregate contains the running totals of all batches that have been
// merged so far.
type Aggregate struct {
	Sum          float64
	SumOfSquares float64
	Trials       int64
}

// Add the outcomes of a batch to the running totals. Addition is
// commutative and associative, except for floating point rounding.
func (a *Aggregate) Add(batch Batch) {
	a.Sum += batch.Sum
	a.SumOfSquares += batch.SumOfSquares
	a.Trials += batch.Trials
}

// Mean of all trial outcomes. The result is NaN if no trials have been
// merged.
func (a *Aggregate) Mean() float64 {
	return a.Sum / float64(a.Trials)
}

// Variance of all trial outcomes, computed as E[X^2] - E[X]^2. Due to
// cancellation, the result may be slightly negative when all outcomes
// are (nearly) identical.
func (a *Aggregate) Variance() float64 {
	mean := a.Mean()
	return a.SumOfSquares/float64(a.Trials) - mean*mean
}

// StandardError of the mean, being the 1-sigma error bar of the
// estimate.
func (a *Aggregate) StandardError() float64 {
	return math.Sqrt(math.Max(a.Variance(), 0) / float64(a.Trials))
}
