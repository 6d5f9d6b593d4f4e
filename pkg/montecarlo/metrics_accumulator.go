package montecarlo

import (
	"sync"

	"github.com/buildbarn/bb-montecarlo/pkg/clock"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	accumulatorPrometheusMetrics sync.Once

	accumulatorBatchesMerged = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "montecarlo",
			Name:      "accumulator_batches_merged_total",
			Help:      "Number of batches merged into the global aggregate.",
		})
	accumulatorTrialsMerged = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "montecarlo",
			Name:      "accumulator_trials_merged_total",
			Help:      "Number of trials merged into the global aggregate.",
		})
	accumulatorTerminationsObserved = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "montecarlo",
			Name:      "accumulator_terminations_observed_total",
			Help:      "Number of merges after which the worker observed that the run terminated.",
		})
	accumulatorMergeDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "buildbarn",
			Subsystem: "montecarlo",
			Name:      "accumulator_merge_duration_seconds",
			Help:      "Amount of time spent merging a batch, including waiting for the lock, in seconds.",
			Buckets:   prometheus.ExponentialBucketsRange(1e-7, 1e-1, 13),
		})
)

type metricsAccumulator struct {
	base  Accumulator
	clock clock.Clock
}

// NewMetricsAccumulator creates a decorator for Accumulator that
// exposes Prometheus metrics on the number of merges and the time
// spent performing them.
func NewMetricsAccumulator(base Accumulator, clock clock.Clock) Accumulator {
	accumulatorPrometheusMetrics.Do(func() {
		prometheus.MustRegister(accumulatorBatchesMerged)
		prometheus.MustRegister(accumulatorTrialsMerged)
		prometheus.MustRegister(accumulatorTerminationsObserved)
		prometheus.MustRegister(accumulatorMergeDurationSeconds)
	})

	return &metricsAccumulator{
		base:  base,
		clock: clock,
	}
}

func (a *metricsAccumulator) Merge(batch Batch) bool {
	timeStart := a.clock.Now()
	done := a.base.Merge(batch)
	accumulatorMergeDurationSeconds.Observe(a.clock.Now().Sub(timeStart).Seconds())

	accumulatorBatchesMerged.Inc()
	accumulatorTrialsMerged.Add(float64(batch.Trials))
	if done {
		accumulatorTerminationsObserved.Inc()
	}
	return done
}

func (a *metricsAccumulator) Snapshot() (Aggregate, bool) {
	return a.base.Snapshot()
}
