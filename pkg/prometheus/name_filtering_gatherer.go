package prometheus

import (
	"regexp"

	"github.com/prometheus/client_golang/prometheus"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

type nameFilteringGatherer struct {
	base        prometheus.Gatherer
	namePattern *regexp.Regexp
}

// NewNameFilteringGatherer creates a decorator for Gatherer that only
// returns the metric families whose name matches a regular expression.
// It is used to limit the set of metrics that are pushed to a
// Pushgateway at the end of an estimation run, as runtime metrics of
// the Go process are of little use once the process has terminated.
func NewNameFilteringGatherer(base prometheus.Gatherer, namePattern *regexp.Regexp) prometheus.Gatherer {
	return &nameFilteringGatherer{
		base:        base,
		namePattern: namePattern,
	}
}

func (g *nameFilteringGatherer) Gather() ([]*io_prometheus_client.MetricFamily, error) {
	families, err := g.base.Gather()
	// Gather() may return partial results alongside an error.
	matched := families[:0]
	for _, family := range families {
		if g.namePattern.MatchString(family.GetName()) {
			matched = append(matched, family)
		}
	}
	return matched, err
}
