package montecarlo_test

import (
	"math"
	"runtime"
	"testing"

	"github.com/buildbarn/bb-montecarlo/pkg/montecarlo"
	"github.com/buildbarn/bb-montecarlo/pkg/testutil"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestParametersValidate(t *testing.T) {
	valid := montecarlo.Parameters{
		RelativeTolerance: 1e-2,
		MaximumTrials:     1000000,
		BatchSize:         500,
	}
	require.NoError(t, valid.Validate())

	// An infinite tolerance is met by the first batch that is merged.
	infiniteTolerance := valid
	infiniteTolerance.RelativeTolerance = math.Inf(1)
	require.NoError(t, infiniteTolerance.Validate())

	for name, testCase := range map[string]struct {
		mutate func(p *montecarlo.Parameters)
		err    error
	}{
		"ZeroTolerance": {
			mutate: func(p *montecarlo.Parameters) { p.RelativeTolerance = 0 },
			err:    status.Error(codes.InvalidArgument, "Relative tolerance must be positive, got 0"),
		},
		"NegativeTolerance": {
			mutate: func(p *montecarlo.Parameters) { p.RelativeTolerance = -0.5 },
			err:    status.Error(codes.InvalidArgument, "Relative tolerance must be positive, got -0.5"),
		},
		"NaNTolerance": {
			mutate: func(p *montecarlo.Parameters) { p.RelativeTolerance = math.NaN() },
			err:    status.Error(codes.InvalidArgument, "Relative tolerance must be positive, got NaN"),
		},
		"ZeroMaximumTrials": {
			mutate: func(p *montecarlo.Parameters) { p.MaximumTrials = 0 },
			err:    status.Error(codes.InvalidArgument, "Maximum number of trials must be positive, got 0"),
		},
		"ZeroBatchSize": {
			mutate: func(p *montecarlo.Parameters) { p.BatchSize = 0 },
			err:    status.Error(codes.InvalidArgument, "Batch size must be positive, got 0"),
		},
		"NegativeParallelism": {
			mutate: func(p *montecarlo.Parameters) { p.Parallelism = -1 },
			err:    status.Error(codes.InvalidArgument, "Parallelism cannot be negative, got -1"),
		},
	} {
		t.Run(name, func(t *testing.T) {
			parameters := valid
			testCase.mutate(&parameters)
			testutil.RequireEqualStatus(t, testCase.err, parameters.Validate())
		})
	}
}

func TestParametersGetWorkersCount(t *testing.T) {
	parameters := montecarlo.Parameters{Parallelism: 3}
	require.Equal(t, 3, parameters.GetWorkersCount())

	parameters.Parallelism = 0
	require.Equal(t, runtime.GOMAXPROCS(0), parameters.GetWorkersCount())
}
