package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Results of an instrumented traversal, as found in the result label.
const (
	ResultDone      = "done"
	ResultExhausted = "exhausted"
	ResultFailed    = "failed"
)

// Collector holds the metrics of instrumented traversals.
type Collector struct {
	traversals *prometheus.CounterVec
	elements   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewCollector creates the traversal metrics and registers them with reg.
// A nil reg leaves them unregistered.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		traversals: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "route_traversals_total",
				Help: "Total number of traversals, by method and result",
			},
			[]string{"method", "result"},
		),
		elements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "route_elements_total",
				Help: "Total number of elements handed to handlers",
			},
			[]string{"method"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "route_traversal_duration_seconds",
				Help:    "Duration of traversals",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}

	if reg == nil {
		return c, nil
	}

	for _, collector := range []prometheus.Collector{c.traversals, c.elements, c.duration} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// MustNewCollector is NewCollector panicking on registration failures.
func MustNewCollector(reg prometheus.Registerer) *Collector {
	c, err := NewCollector(reg)
	if err != nil {
		panic(err)
	}
	return c
}
