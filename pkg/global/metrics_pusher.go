package global

import (
	"github.com/buildbarn/bb-montecarlo/pkg/util"
	"github.com/prometheus/client_golang/prometheus/push"

	"google.golang.org/grpc/codes"
)

// MetricsPusher is called into when the estimation run completes, so
// that metrics can be published.
type MetricsPusher interface {
	PushMetrics()
}

type noopMetricsPusher struct{}

func (noopMetricsPusher) PushMetrics() {}

// NoopMetricsPusher is a MetricsPusher that does nothing.
var NoopMetricsPusher MetricsPusher = noopMetricsPusher{}

type pushgatewayMetricsPusher struct {
	pusher      *push.Pusher
	errorLogger util.ErrorLogger
}

// NewPushgatewayMetricsPusher creates a MetricsPusher that pushes all
// metrics to a Prometheus Pushgateway. Failures are not fatal, as the
// outcome of the estimation run is unaffected by them. They are
// reported through an ErrorLogger instead.
func NewPushgatewayMetricsPusher(pusher *push.Pusher, errorLogger util.ErrorLogger) MetricsPusher {
	return &pushgatewayMetricsPusher{
		pusher:      pusher,
		errorLogger: errorLogger,
	}
}

func (mp *pushgatewayMetricsPusher) PushMetrics() {
	if err := mp.pusher.Push(); err != nil {
		mp.errorLogger.Log(util.StatusWrapWithCode(err, codes.Unavailable, "Failed to push metrics to Prometheus Pushgateway"))
	}
}
