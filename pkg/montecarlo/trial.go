package montecarlo

import (
	"github.com/buildbarn/bb-montecarlo/pkg/random"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Trial draws a single observation of the random variable whose
// expectation is estimated. It may consume any number of deviates
// from the worker's generator.
type Trial func(generator random.SingleThreadedGenerator) float64

// UniformTrial observes a variable that is uniformly distributed over
// [0, 1). Its expectation is 0.5.
func UniformTrial(generator random.SingleThreadedGenerator) float64 {
	return generator.Float64()
}

// QuarterCircleTrial picks a point in the unit square, returning 4 if
// it lies within the unit circle and 0 otherwise. Its expectation is
// pi.
func QuarterCircleTrial(generator random.SingleThreadedGenerator) float64 {
	x := generator.Float64()
	y := generator.Float64()
	if x*x+y*y <= 1.0 {
		return 4
	}
	return 0
}

// NewTrialFromConfiguration returns the Trial corresponding to a name,
// as used in configuration files. An empty name selects UniformTrial.
func NewTrialFromConfiguration(name string) (Trial, error) {
	switch name {
	case "", "uniform":
		return UniformTrial, nil
	case "quarter_circle":
		return QuarterCircleTrial, nil
	default:
		return nil, status.Errorf(codes.InvalidArgument, "Unknown trial %#v", name)
	}
}
