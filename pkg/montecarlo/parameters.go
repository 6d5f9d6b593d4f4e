package montecarlo

import (
	"runtime"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Parameters of a single estimation run. They are established before
// any worker is launched and remain immutable afterwards.
type Parameters struct {
	// The target upper bound on the ratio between the standard error
	// and the mean.
	RelativeTolerance float64
	// Hard ceiling on the number of trials. Estimation stops as soon
	// as this number of trials is exceeded, regardless of the error.
	MaximumTrials int64
	// Number of trials each worker runs between merges into the
	// global aggregate.
	BatchSize int64
	// Number of workers. Zero selects the available parallelism.
	Parallelism int
}

// Validate the parameters, returning an error with code
// INVALID_ARGUMENT if one of them is out of range.
func (p *Parameters) Validate() error {
	if !(p.RelativeTolerance > 0) {
		return status.Errorf(codes.InvalidArgument, "Relative tolerance must be positive, got %g", p.RelativeTolerance)
	}
	if p.MaximumTrials < 1 {
		return status.Errorf(codes.InvalidArgument, "Maximum number of trials must be positive, got %d", p.MaximumTrials)
	}
	if p.BatchSize < 1 {
		return status.Errorf(codes.InvalidArgument, "Batch size must be positive, got %d", p.BatchSize)
	}
	if p.Parallelism < 0 {
		return status.Errorf(codes.InvalidArgument, "Parallelism cannot be negative, got %d", p.Parallelism)
	}
	return nil
}

// GetWorkersCount returns the size of the worker pool.
func (p *Parameters) GetWorkersCount() int {
	if p.Parallelism == 0 {
		return runtime.GOMAXPROCS(0)
	}
	return p.Parallelism
}
