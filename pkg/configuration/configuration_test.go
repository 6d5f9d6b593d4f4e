package configuration_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/buildbarn/bb-montecarlo/pkg/configuration"
	"github.com/buildbarn/bb-montecarlo/pkg/montecarlo"
	"github.com/buildbarn/bb-montecarlo/pkg/testutil"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func writeConfiguration(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "bb_montecarlo.jsonnet")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestGetApplicationConfiguration(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		c, err := configuration.GetApplicationConfiguration(writeConfiguration(t, "{}"))
		require.NoError(t, err)
		require.Equal(t, montecarlo.Parameters{
			RelativeTolerance: 1e-2,
			MaximumTrials:     1000000,
			BatchSize:         500,
		}, c.GetParameters())
		require.Equal(t, time.Duration(0), c.ProgressReportInterval.Duration)
		require.Nil(t, c.Global.PrometheusPushgateway)
	})

	t.Run("Explicit", func(t *testing.T) {
		c, err := configuration.GetApplicationConfiguration(writeConfiguration(t, `{
			relativeTolerance: 1e-3,
			maximumTrials: 50 * 1000,
			batchSize: 100,
			parallelism: 8,
			deviateSource: 'pcg',
			progressReportInterval: '2s',
			global: {
				prometheusPushgateway: { url: 'http://pushgateway:9091' },
				tracing: { stderrExporter: true },
			},
		}`))
		require.NoError(t, err)
		require.Equal(t, montecarlo.Parameters{
			RelativeTolerance: 1e-3,
			MaximumTrials:     50000,
			BatchSize:         100,
			Parallelism:       8,
		}, c.GetParameters())
		require.Equal(t, "pcg", c.DeviateSource)
		require.Equal(t, 2*time.Second, c.ProgressReportInterval.Duration)
		require.Equal(t, "bb_montecarlo", c.Global.PrometheusPushgateway.Job)
		require.Equal(t, 1.0, c.Global.Tracing.SamplingRatio)
	})

	t.Run("ExplicitZeroIsPreserved", func(t *testing.T) {
		// A batch size of zero must be reported by validation,
		// as opposed to being replaced by the default.
		c, err := configuration.GetApplicationConfiguration(writeConfiguration(t, "{ batchSize: 0 }"))
		require.NoError(t, err)
		parameters := c.GetParameters()
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Batch size must be positive, got 0"), parameters.Validate())
	})

	t.Run("InvalidDuration", func(t *testing.T) {
		_, err := configuration.GetApplicationConfiguration(writeConfiguration(t, "{ progressReportInterval: 'soon' }"))
		testutil.RequirePrefixedStatus(t, status.Error(codes.InvalidArgument, "Failed to unmarshal configuration: "), err)
	})

	t.Run("NonExistent", func(t *testing.T) {
		_, err := configuration.GetApplicationConfiguration(filepath.Join(t.TempDir(), "nonexistent.jsonnet"))
		testutil.RequirePrefixedStatus(t, status.Error(codes.Unknown, "Failed to read file contents: "), err)
	})
}

func TestGetApplicationConfigurationEnvironmentOverrides(t *testing.T) {
	path := writeConfiguration(t, `{
		relativeTolerance: 1e-3,
		batchSize: 100,
	}`)

	t.Run("Success", func(t *testing.T) {
		t.Setenv("BB_MONTECARLO_RELATIVE_TOLERANCE", "0.05")
		t.Setenv("BB_MONTECARLO_PARALLELISM", "3")
		c, err := configuration.GetApplicationConfiguration(path)
		require.NoError(t, err)
		require.Equal(t, montecarlo.Parameters{
			RelativeTolerance: 0.05,
			MaximumTrials:     1000000,
			BatchSize:         100,
			Parallelism:       3,
		}, c.GetParameters())
	})

	t.Run("Malformed", func(t *testing.T) {
		t.Setenv("BB_MONTECARLO_BATCH_SIZE", "five hundred")
		_, err := configuration.GetApplicationConfiguration(path)
		require.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}
