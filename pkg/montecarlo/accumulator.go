package montecarlo

import (
	"sync"
)

// Accumulator holds the global aggregate of an estimation run,
// together with the termination flag. Both are only accessed under a
// single lock, so that a ConvergenceOracle never observes a partially
// updated aggregate.
type Accumulator interface {
	// Merge a batch into the aggregate. The termination flag is set
	// if the aggregate is converged either before or after merging.
	// The return value is the state of the termination flag. Once
	// true, it will remain true.
	Merge(batch Batch) bool
	// Snapshot returns a consistent copy of the aggregate and the
	// termination flag.
	Snapshot() (Aggregate, bool)
}

type lockingAccumulator struct {
	oracle ConvergenceOracle

	lock      sync.Mutex
	aggregate Aggregate
	done      bool
}

// NewAccumulator creates an Accumulator with an empty aggregate that
// consults a ConvergenceOracle on every merge.
func NewAccumulator(oracle ConvergenceOracle) Accumulator {
	return &lockingAccumulator{
		oracle: oracle,
	}
}

func (a *lockingAccumulator) Merge(batch Batch) bool {
	a.lock.Lock()
	defer a.lock.Unlock()

	// Convergence of the aggregate as committed so far takes
	// precedence over whatever this batch contributes.
	a.done = a.done || a.oracle.IsConverged(a.aggregate)
	a.aggregate.Add(batch)
	a.done = a.done || a.oracle.IsConverged(a.aggregate)
	return a.done
}

func (a *lockingAccumulator) Snapshot() (Aggregate, bool) {
	a.lock.Lock()
	defer a.lock.Unlock()
	return a.aggregate, a.done
}
