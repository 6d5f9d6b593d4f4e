package montecarlo

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ConvergenceOracle decides whether an estimation run has gathered
// enough trials. Implementations must be pure functions of the
// aggregate that is provided.
type ConvergenceOracle interface {
	IsConverged(aggregate Aggregate) bool
}

// IsConverged returns whether the relative 1-sigma error of the mean
// of a set of trials is below a tolerance, or whether the number of
// trials exceeds a cap.
//
// The relative error is undefined when no trials have been run or when
// the mean is exactly zero. Both cases are reported as not converged,
// meaning that only the cap can terminate such a run.
func IsConverged(sumX, sumX2 float64, trials int64, relativeTolerance float64, maximumTrials int64) bool {
	if trials > maximumTrials {
		return true
	}
	if trials <= 0 {
		return false
	}
	n := float64(trials)
	mean := sumX / n
	if mean == 0 {
		return false
	}
	variance := sumX2/n - mean*mean
	return variance/(mean*mean)/n < relativeTolerance*relativeTolerance
}

type relativeErrorConvergenceOracle struct {
	relativeTolerance float64
	maximumTrials     int64
}

// NewRelativeErrorConvergenceOracle creates a ConvergenceOracle that
// terminates adaptively, as soon as the relative error drops below a
// tolerance or the number of trials exceeds a cap.
func NewRelativeErrorConvergenceOracle(relativeTolerance float64, maximumTrials int64) ConvergenceOracle {
	return &relativeErrorConvergenceOracle{
		relativeTolerance: relativeTolerance,
		maximumTrials:     maximumTrials,
	}
}

func (o *relativeErrorConvergenceOracle) IsConverged(aggregate Aggregate) bool {
	return IsConverged(aggregate.Sum, aggregate.SumOfSquares, aggregate.Trials, o.relativeTolerance, o.maximumTrials)
}

type fixedTrialCountConvergenceOracle struct {
	trials int64
}

// NewFixedTrialCountConvergenceOracle creates a ConvergenceOracle that
// ignores the error of the estimate, only terminating once a number of
// trials has been reached.
func NewFixedTrialCountConvergenceOracle(trials int64) ConvergenceOracle {
	return &fixedTrialCountConvergenceOracle{
		trials: trials,
	}
}

func (o *fixedTrialCountConvergenceOracle) IsConverged(aggregate Aggregate) bool {
	return aggregate.Trials >= o.trials
}

type anyConvergenceOracle struct {
	oracles []ConvergenceOracle
}

// NewAnyConvergenceOracle creates a ConvergenceOracle that reports
// convergence as soon as one of its backing oracles does.
func NewAnyConvergenceOracle(oracles ...ConvergenceOracle) ConvergenceOracle {
	return &anyConvergenceOracle{
		oracles: oracles,
	}
}

func (o *anyConvergenceOracle) IsConverged(aggregate Aggregate) bool {
	for _, oracle := range o.oracles {
		if oracle.IsConverged(aggregate) {
			return true
		}
	}
	return false
}

// NewConvergenceOracleFromConfiguration returns the ConvergenceOracle
// corresponding to a name, as used in configuration files. An empty
// name selects the relative error criterion.
func NewConvergenceOracleFromConfiguration(name string, parameters Parameters) (ConvergenceOracle, error) {
	switch name {
	case "", "relative_error":
		return NewRelativeErrorConvergenceOracle(parameters.RelativeTolerance, parameters.MaximumTrials), nil
	case "fixed_trial_count":
		return NewFixedTrialCountConvergenceOracle(parameters.MaximumTrials), nil
	default:
		return nil, status.Errorf(codes.InvalidArgument, "Unknown convergence criterion %#v", name)
	}
}
