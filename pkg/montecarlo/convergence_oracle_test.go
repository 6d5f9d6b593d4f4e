package montecarlo_test

import (
	"math"
	"testing"

	"github.com/buildbarn/bb-montecarlo/internal/mock"
	"github.com/buildbarn/bb-montecarlo/pkg/montecarlo"
	"github.com/buildbarn/bb-montecarlo/pkg/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestIsConverged(t *testing.T) {
	t.Run("ConstantStream", func(t *testing.T) {
		// Five trials of 0.5 have no variance at all.
		require.True(t, montecarlo.IsConverged(2.5, 1.25, 5, 1.0, 10))
	})

	t.Run("AlternatingStream", func(t *testing.T) {
		// Trials 0, 1, 0, 1, 0 have mean 0.4 and variance 0.24,
		// giving a squared relative error of 0.24/0.16/5 = 0.3.
		require.True(t, montecarlo.IsConverged(2.0, 2.0, 5, 1.0, 10))
		require.True(t, montecarlo.IsConverged(2.0, 2.0, 5, 0.55, 10))
		require.False(t, montecarlo.IsConverged(2.0, 2.0, 5, 0.54, 10))
	})

	t.Run("Pure", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			require.False(t, montecarlo.IsConverged(2.0, 2.0, 5, 0.5, 10))
			require.True(t, montecarlo.IsConverged(2.0, 2.0, 5, 0.6, 10))
		}
	})

	t.Run("CapAlwaysWins", func(t *testing.T) {
		for _, trials := range []int64{11, 12, 1000, math.MaxInt64} {
			require.True(t, montecarlo.IsConverged(1.0, 1e12, trials, 1e-9, 10))
		}
		// Reaching the cap is not sufficient. It must be exceeded.
		require.False(t, montecarlo.IsConverged(1.0, 1e12, 10, 1e-9, 10))
	})

	t.Run("NoTrials", func(t *testing.T) {
		require.False(t, montecarlo.IsConverged(0, 0, 0, 1.0, 10))
	})

	t.Run("ZeroMean", func(t *testing.T) {
		// The relative error is undefined for a zero mean. Such
		// runs can only terminate by exceeding the cap.
		require.False(t, montecarlo.IsConverged(0, 5, 5, 1e9, 10))
		require.False(t, montecarlo.IsConverged(0, 0, 5, 1e9, 10))
		require.True(t, montecarlo.IsConverged(0, 5, 15, 1e9, 10))
	})

	t.Run("NegativeMean", func(t *testing.T) {
		require.True(t, montecarlo.IsConverged(-2.5, 1.25, 5, 1.0, 10))
	})
}

func TestRelativeErrorConvergenceOracle(t *testing.T) {
	oracle := montecarlo.NewRelativeErrorConvergenceOracle(0.55, 10)
	require.False(t, oracle.IsConverged(montecarlo.Aggregate{}))
	require.True(t, oracle.IsConverged(montecarlo.Aggregate{Sum: 2.0, SumOfSquares: 2.0, Trials: 5}))
	require.False(t, oracle.IsConverged(montecarlo.Aggregate{Sum: 2.0, SumOfSquares: 4.0, Trials: 5}))
	require.True(t, oracle.IsConverged(montecarlo.Aggregate{Sum: 2.0, SumOfSquares: 4.0, Trials: 11}))
}

func TestFixedTrialCountConvergenceOracle(t *testing.T) {
	oracle := montecarlo.NewFixedTrialCountConvergenceOracle(1000)
	require.False(t, oracle.IsConverged(montecarlo.Aggregate{Sum: 500, SumOfSquares: 250, Trials: 999}))
	require.True(t, oracle.IsConverged(montecarlo.Aggregate{Sum: 500, SumOfSquares: 250, Trials: 1000}))
}

func TestAnyConvergenceOracle(t *testing.T) {
	ctrl := gomock.NewController(t)

	oracle1 := mock.NewMockConvergenceOracle(ctrl)
	oracle2 := mock.NewMockConvergenceOracle(ctrl)
	oracle := montecarlo.NewAnyConvergenceOracle(oracle1, oracle2)
	aggregate := montecarlo.Aggregate{Sum: 1, SumOfSquares: 1, Trials: 2}

	t.Run("NoneConverged", func(t *testing.T) {
		oracle1.EXPECT().IsConverged(aggregate).Return(false)
		oracle2.EXPECT().IsConverged(aggregate).Return(false)
		require.False(t, oracle.IsConverged(aggregate))
	})

	t.Run("FirstConverged", func(t *testing.T) {
		// The second oracle should not be consulted.
		oracle1.EXPECT().IsConverged(aggregate).Return(true)
		require.True(t, oracle.IsConverged(aggregate))
	})

	t.Run("SecondConverged", func(t *testing.T) {
		oracle1.EXPECT().IsConverged(aggregate).Return(false)
		oracle2.EXPECT().IsConverged(aggregate).Return(true)
		require.True(t, oracle.IsConverged(aggregate))
	})
}

func TestNewConvergenceOracleFromConfiguration(t *testing.T) {
	parameters := montecarlo.Parameters{
		RelativeTolerance: 1.0,
		MaximumTrials:     10,
		BatchSize:         5,
	}
	aggregate := montecarlo.Aggregate{Sum: 2.5, SumOfSquares: 1.25, Trials: 5}

	t.Run("Default", func(t *testing.T) {
		oracle, err := montecarlo.NewConvergenceOracleFromConfiguration("", parameters)
		require.NoError(t, err)
		require.True(t, oracle.IsConverged(aggregate))
	})

	t.Run("FixedTrialCount", func(t *testing.T) {
		oracle, err := montecarlo.NewConvergenceOracleFromConfiguration("fixed_trial_count", parameters)
		require.NoError(t, err)
		require.False(t, oracle.IsConverged(aggregate))
		require.True(t, oracle.IsConverged(montecarlo.Aggregate{Sum: 5, SumOfSquares: 2.5, Trials: 10}))
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := montecarlo.NewConvergenceOracleFromConfiguration("bayesian", parameters)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Unknown convergence criterion \"bayesian\""), err)
	})
}
