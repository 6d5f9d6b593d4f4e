package configuration

import (
	"encoding/json"
	"time"

	"github.com/buildbarn/bb-montecarlo/pkg/montecarlo"
	"github.com/buildbarn/bb-montecarlo/pkg/util"
	"github.com/caarlos0/env/v11"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ApplicationConfiguration is the top-level configuration of
// bb_montecarlo.
type ApplicationConfiguration struct {
	// Pointers are used for the numerical run parameters, so that
	// explicitly provided zero values are rejected instead of being
	// replaced by defaults.
	RelativeTolerance *float64 `json:"relativeTolerance"`
	MaximumTrials     *int64   `json:"maximumTrials"`
	BatchSize         *int64   `json:"batchSize"`
	Parallelism       int      `json:"parallelism"`

	DeviateSource          string   `json:"deviateSource"`
	Trial                  string   `json:"trial"`
	Convergence            string   `json:"convergence"`
	ProgressReportInterval Duration `json:"progressReportInterval"`

	Global GlobalConfiguration `json:"global"`
}

// GlobalConfiguration contains options that apply to the process as a
// whole, as opposed to a single estimation run.
type GlobalConfiguration struct {
	LogPaths              []string                            `json:"logPaths"`
	DiagnosticsHTTPServer *DiagnosticsHTTPServerConfiguration `json:"diagnosticsHttpServer"`
	PrometheusPushgateway *PrometheusPushgatewayConfiguration `json:"prometheusPushgateway"`
	Tracing               *TracingConfiguration               `json:"tracing"`
	MutexProfileFraction  int                                 `json:"mutexProfileFraction"`
}

// DiagnosticsHTTPServerConfiguration configures a web server that
// exposes health checks, Prometheus metrics and pprof endpoints while
// the estimation run is in progress.
type DiagnosticsHTTPServerConfiguration struct {
	ListenAddress    string `json:"listenAddress"`
	EnablePrometheus bool   `json:"enablePrometheus"`
	EnablePprof      bool   `json:"enablePprof"`
}

// PrometheusPushgatewayConfiguration configures to which Prometheus
// Pushgateway metrics are pushed when the estimation run completes.
type PrometheusPushgatewayConfiguration struct {
	URL      string            `json:"url"`
	Job      string            `json:"job"`
	Grouping map[string]string `json:"grouping"`
	// Regular expression that metric names need to match to be
	// pushed. All metrics are pushed if left empty.
	MetricsPattern string `json:"metricsPattern"`
}

// TracingConfiguration configures OpenTelemetry tracing.
type TracingConfiguration struct {
	StderrExporter     bool              `json:"stderrExporter"`
	SamplingRatio      float64           `json:"samplingRatio"`
	ResourceAttributes map[string]string `json:"resourceAttributes"`
}

// Duration is a time.Duration that is stored in configuration files
// as a string, such as "1m30s".
type Duration struct {
	time.Duration
}

// UnmarshalJSON parses a duration string.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	if v < 0 {
		return status.Errorf(codes.InvalidArgument, "Duration %#v is negative", s)
	}
	d.Duration = v
	return nil
}

// GetApplicationConfiguration reads the configuration of bb_montecarlo
// from a Jsonnet file, filling in defaults for options that are not
// set.
func GetApplicationConfiguration(path string) (*ApplicationConfiguration, error) {
	var configuration ApplicationConfiguration
	if err := util.UnmarshalConfigurationFromFile(path, &configuration); err != nil {
		return nil, err
	}
	if err := applyEnvironmentOverrides(&configuration); err != nil {
		return nil, err
	}
	setDefaultApplicationValues(&configuration)
	return &configuration, nil
}

// GetParameters returns the run parameters that are stored in the
// configuration.
func (c *ApplicationConfiguration) GetParameters() montecarlo.Parameters {
	return montecarlo.Parameters{
		RelativeTolerance: *c.RelativeTolerance,
		MaximumTrials:     *c.MaximumTrials,
		BatchSize:         *c.BatchSize,
		Parallelism:       c.Parallelism,
	}
}

// environmentOverrides contains run parameters that may be provided
// through environment variables. These take precedence over the
// configuration file, making it possible to sweep over parameters
// without generating a configuration file for every run.
type environmentOverrides struct {
	RelativeTolerance *float64 `env:"BB_MONTECARLO_RELATIVE_TOLERANCE"`
	MaximumTrials     *int64   `env:"BB_MONTECARLO_MAXIMUM_TRIALS"`
	BatchSize         *int64   `env:"BB_MONTECARLO_BATCH_SIZE"`
	Parallelism       *int     `env:"BB_MONTECARLO_PARALLELISM"`
}

func applyEnvironmentOverrides(configuration *ApplicationConfiguration) error {
	var overrides environmentOverrides
	if err := env.Parse(&overrides); err != nil {
		return util.StatusWrapWithCode(err, codes.InvalidArgument, "Failed to parse environment variables")
	}
	if overrides.RelativeTolerance != nil {
		configuration.RelativeTolerance = overrides.RelativeTolerance
	}
	if overrides.MaximumTrials != nil {
		configuration.MaximumTrials = overrides.MaximumTrials
	}
	if overrides.BatchSize != nil {
		configuration.BatchSize = overrides.BatchSize
	}
	if overrides.Parallelism != nil {
		configuration.Parallelism = *overrides.Parallelism
	}
	return nil
}

func setDefaultApplicationValues(configuration *ApplicationConfiguration) {
	if configuration.RelativeTolerance == nil {
		relativeTolerance := 1e-2
		configuration.RelativeTolerance = &relativeTolerance
	}
	if configuration.MaximumTrials == nil {
		maximumTrials := int64(1000000)
		configuration.MaximumTrials = &maximumTrials
	}
	if configuration.BatchSize == nil {
		batchSize := int64(500)
		configuration.BatchSize = &batchSize
	}
	if pushgateway := configuration.Global.PrometheusPushgateway; pushgateway != nil && pushgateway.Job == "" {
		pushgateway.Job = "bb_montecarlo"
	}
	if tracing := configuration.Global.Tracing; tracing != nil && tracing.SamplingRatio == 0 {
		tracing.SamplingRatio = 1.0
	}
}
