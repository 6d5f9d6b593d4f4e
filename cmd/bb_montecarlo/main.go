package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"os"

	"github.com/buildbarn/bb-montecarlo/pkg/clock"
	"github.com/buildbarn/bb-montecarlo/pkg/configuration"
	"github.com/buildbarn/bb-montecarlo/pkg/global"
	"github.com/buildbarn/bb-montecarlo/pkg/montecarlo"
	"github.com/buildbarn/bb-montecarlo/pkg/program"
	"github.com/buildbarn/bb-montecarlo/pkg/random"
	"github.com/buildbarn/bb-montecarlo/pkg/util"
	"github.com/google/uuid"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Estimates the expectation of a random variable by running a pool of
// workers that draw trials in batches, terminating as soon as the
// relative 1-sigma error of the mean drops below the configured
// tolerance, or the maximum number of trials is exceeded.

func main() {
	program.RunMain(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
		if len(os.Args) != 2 {
			return status.Error(codes.InvalidArgument, "Usage: bb_montecarlo bb_montecarlo.jsonnet")
		}
		applicationConfiguration, err := configuration.GetApplicationConfiguration(os.Args[1])
		if err != nil {
			return util.StatusWrapf(err, "Failed to read configuration from %s", os.Args[1])
		}

		runID, err := uuid.NewRandom()
		if err != nil {
			return util.StatusWrapWithCode(err, codes.Unavailable, "Failed to generate run ID")
		}
		diagnosticsServer, metricsPusher, err := global.ApplyConfiguration(
			&applicationConfiguration.Global,
			map[string]string{"run_id": runID.String()})
		if err != nil {
			return util.StatusWrap(err, "Failed to apply global configuration options")
		}
		dependenciesGroup.Go(diagnosticsServer.Run)
		log.Printf("Starting run %s", runID)

		parameters := applicationConfiguration.GetParameters()
		deviateSourceFactory, err := random.NewDeviateSourceFactoryFromConfiguration(applicationConfiguration.DeviateSource)
		if err != nil {
			return util.StatusWrap(err, "Failed to create deviate source")
		}
		trial, err := montecarlo.NewTrialFromConfiguration(applicationConfiguration.Trial)
		if err != nil {
			return util.StatusWrap(err, "Failed to create trial")
		}
		oracle, err := montecarlo.NewConvergenceOracleFromConfiguration(applicationConfiguration.Convergence, parameters)
		if err != nil {
			return util.StatusWrap(err, "Failed to create convergence oracle")
		}
		estimator := montecarlo.NewEstimator(
			parameters,
			random.NewSeedMint(rand.Reader),
			deviateSourceFactory,
			trial,
			montecarlo.NewMetricsAccumulator(montecarlo.NewAccumulator(oracle), clock.SystemClock),
			clock.SystemClock,
			applicationConfiguration.ProgressReportInterval.Duration)

		runCtx, span := otel.Tracer("github.com/buildbarn/bb-montecarlo/cmd/bb_montecarlo").Start(
			ctx,
			"bb_montecarlo.Run",
			trace.WithAttributes(attribute.String("run_id", runID.String())))
		diagnosticsServer.SetReady()
		estimate, err := estimator.Estimate(runCtx)
		diagnosticsServer.SetNotServing()
		span.End()
		if err != nil {
			return err
		}

		fmt.Println("--- Run parameters:")
		fmt.Printf("    Relative tolerance:  %g\n", parameters.RelativeTolerance)
		fmt.Printf("    Maximum trials:      %d\n", parameters.MaximumTrials)
		fmt.Printf("    Batch size:          %d\n", parameters.BatchSize)
		fmt.Printf("    Run ID:              %s\n", runID)
		fmt.Printf(
			"%d workers: %.6g (%.6g): %.3f s, %d trials\n",
			estimate.Workers,
			estimate.Mean,
			estimate.StandardError,
			estimate.Elapsed.Seconds(),
			estimate.Trials)

		metricsPusher.PushMetrics()
		return nil
	})
}
