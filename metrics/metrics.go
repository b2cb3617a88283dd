// Package metrics exposes Prometheus collectors for periodicity computations,
// elastic centering and supergraph expansion.
//
// A nil *Collector is valid and records nothing, so engines can take one
// unconditionally.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeOK       = "ok"
	OutcomeFailed   = "failed"
	OutcomeCanceled = "canceled"
)

// Collector groups the lvperiodic metrics registered on one registry.
type Collector struct {
	ComputationsTotal   *prometheus.CounterVec
	ComputationDuration *prometheus.HistogramVec
	ClosedPathsTotal    *prometheus.CounterVec
	CenteringTotal      *prometheus.CounterVec
	SupergraphTotal     *prometheus.CounterVec
	SupergraphNodes     prometheus.Histogram
}

// New registers the collectors on reg. Registering twice on the same
// registry panics, as promauto does.
func New(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)

	return &Collector{
		ComputationsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvperiodic_computations_total",
				Help: "Periodicity computations by algorithm and resulting dimensionality",
			},
			[]string{"algorithm", "dimension"},
		),
		ComputationDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lvperiodic_computation_duration_seconds",
				Help:    "Duration of periodicity computations in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"algorithm"},
		),
		ClosedPathsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvperiodic_closed_paths_total",
				Help: "Closed paths or basis cycles examined while computing periodicity",
			},
			[]string{"algorithm"},
		),
		CenteringTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvperiodic_centering_total",
				Help: "Elastic centering runs by outcome",
			},
			[]string{"outcome"},
		),
		SupergraphTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvperiodic_supergraph_total",
				Help: "Supergraph expansions by outcome",
			},
			[]string{"outcome"},
		),
		SupergraphNodes: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lvperiodic_supergraph_nodes",
				Help:    "Node count of built supergraphs",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}
}

// RecordComputation records one finished periodicity computation.
func (c *Collector) RecordComputation(algorithm, dimension string, paths int, d time.Duration) {
	if c == nil {
		return
	}
	c.ComputationsTotal.WithLabelValues(algorithm, dimension).Inc()
	c.ComputationDuration.WithLabelValues(algorithm).Observe(d.Seconds())
	c.ClosedPathsTotal.WithLabelValues(algorithm).Add(float64(paths))
}

// RecordCentering records one centering run.
func (c *Collector) RecordCentering(outcome string) {
	if c == nil {
		return
	}
	c.CenteringTotal.WithLabelValues(outcome).Inc()
}

// RecordSupergraph records one expansion; nodes is ignored on failure.
func (c *Collector) RecordSupergraph(outcome string, nodes int) {
	if c == nil {
		return
	}
	c.SupergraphTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK {
		c.SupergraphNodes.Observe(float64(nodes))
	}
}
