package global

import (
	"io"
	"log"
	"os"
	"regexp"
	"runtime"

	// The pprof package does not provide a function for registering
	// its endpoints against an arbitrary mux. Load it to force
	// registration against the default mux, so we can forward
	// traffic to that mux instead.
	_ "net/http/pprof"

	"github.com/buildbarn/bb-montecarlo/pkg/configuration"
	bb_prometheus "github.com/buildbarn/bb-montecarlo/pkg/prometheus"
	"github.com/buildbarn/bb-montecarlo/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ApplyConfiguration applies configuration options to the running
// process. These configuration options are global, in that they apply
// to the process as a whole, regardless of the parameters of the
// estimation run.
func ApplyConfiguration(configuration *configuration.GlobalConfiguration, grouping map[string]string) (*DiagnosticsServer, MetricsPusher, error) {
	// Logging.
	logPaths := configuration.LogPaths
	logWriters := append(make([]io.Writer, 0, len(logPaths)+1), os.Stderr)
	for _, logPath := range logPaths {
		w, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o666)
		if err != nil {
			return nil, nil, util.StatusWrapf(err, "Failed to open log path %#v", logPath)
		}
		logWriters = append(logWriters, w)
	}
	log.SetOutput(io.MultiWriter(logWriters...))

	// Perform tracing using OpenTelemetry.
	if tracingConfiguration := configuration.Tracing; tracingConfiguration != nil {
		tracerProvider, err := newTracerProviderFromConfiguration(tracingConfiguration)
		if err != nil {
			return nil, nil, util.StatusWrap(err, "Failed to create tracer provider")
		}
		otel.SetTracerProvider(tracerProvider)
	} else {
		otel.SetTracerProvider(noop.NewTracerProvider())
	}

	// Enable mutex profiling. This can be used to measure contention
	// on the lock protecting the global aggregate.
	runtime.SetMutexProfileFraction(configuration.MutexProfileFraction)

	// Push metrics to a Prometheus Pushgateway once the estimation run
	// completes, as the process is typically too short-lived to be
	// scraped.
	metricsPusher := NoopMetricsPusher
	if pushgateway := configuration.PrometheusPushgateway; pushgateway != nil {
		if pushgateway.URL == "" {
			return nil, nil, status.Error(codes.InvalidArgument, "No Prometheus Pushgateway URL provided")
		}
		var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
		if pushgateway.MetricsPattern != "" {
			metricsPattern, err := regexp.Compile(pushgateway.MetricsPattern)
			if err != nil {
				return nil, nil, util.StatusWrapWithCode(err, codes.InvalidArgument, "Invalid Prometheus Pushgateway metrics pattern")
			}
			gatherer = bb_prometheus.NewNameFilteringGatherer(gatherer, metricsPattern)
		}
		pusher := push.New(pushgateway.URL, pushgateway.Job).Gatherer(gatherer)
		for key, value := range pushgateway.Grouping {
			pusher.Grouping(key, value)
		}
		for key, value := range grouping {
			pusher.Grouping(key, value)
		}
		metricsPusher = NewPushgatewayMetricsPusher(pusher, util.DefaultErrorLogger)
	}

	return NewDiagnosticsServer(configuration.DiagnosticsHTTPServer), metricsPusher, nil
}

func newTracerProviderFromConfiguration(configuration *configuration.TracingConfiguration) (*sdktrace.TracerProvider, error) {
	if configuration.SamplingRatio < 0 || configuration.SamplingRatio > 1 {
		return nil, status.Errorf(codes.InvalidArgument, "Sampling ratio must be within [0, 1], got %g", configuration.SamplingRatio)
	}
	tracerProviderOptions := []sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(configuration.SamplingRatio))),
	}
	if configuration.StderrExporter {
		tracerProviderOptions = append(
			tracerProviderOptions,
			sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(NewStderrSpanExporter())))
	}

	// Set resource attributes, so that this process can be
	// identified uniquely.
	resourceAttributes := make([]attribute.KeyValue, 0, len(configuration.ResourceAttributes))
	for key, value := range configuration.ResourceAttributes {
		resourceAttributes = append(resourceAttributes, attribute.String(key, value))
	}
	tracerProviderOptions = append(
		tracerProviderOptions,
		sdktrace.WithResource(resource.NewSchemaless(resourceAttributes...)))
	return sdktrace.NewTracerProvider(tracerProviderOptions...), nil
}
