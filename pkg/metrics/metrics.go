// Package metrics exposes Prometheus instrumentation for card walks and
// renders. It is wired into pkg/walk via the small MetricsSink interface
// that package defines, avoiding an import cycle.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/inkwell-run/cardtree/pkg/node"
)

// WalkMetrics implements walk.MetricsSink, recording per-kind visit
// counts and walk wall-clock duration.
type WalkMetrics struct {
	visits   *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewWalkMetrics registers its collectors against reg and returns a
// ready-to-use WalkMetrics. Pass prometheus.DefaultRegisterer for the
// global registry.
func NewWalkMetrics(reg prometheus.Registerer) *WalkMetrics {
	m := &WalkMetrics{
		visits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cardtree",
			Subsystem: "walk",
			Name:      "visits_total",
			Help:      "Number of visitor dispatches, by node kind.",
		}, []string{"kind"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "cardtree",
			Subsystem: "walk",
			Name:      "duration_seconds",
			Help:      "Wall-clock duration of a single CardWalker walk.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.visits, m.duration)
	return m
}

// ObserveVisit increments the visit counter for kind.
func (m *WalkMetrics) ObserveVisit(kind node.Kind) {
	m.visits.WithLabelValues(kind.String()).Inc()
}

// ObserveWalkDuration records one complete walk's wall-clock duration.
func (m *WalkMetrics) ObserveWalkDuration(d time.Duration) {
	m.duration.Observe(d.Seconds())
}

// RenderMetrics records MarkdownRenderer/TuiRenderer invocations reported
// to it through Observe; cmd/cardtree does not create one. It is
// deliberately separate from WalkMetrics: a render
// call wraps a walk but callers may want renderer-level timing without
// reaching into pkg/walk.
type RenderMetrics struct {
	renders  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewRenderMetrics registers its collectors against reg.
func NewRenderMetrics(reg prometheus.Registerer) *RenderMetrics {
	m := &RenderMetrics{
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cardtree",
			Subsystem: "render",
			Name:      "invocations_total",
			Help:      "Number of renderer invocations, by renderer kind.",
		}, []string{"renderer"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cardtree",
			Subsystem: "render",
			Name:      "duration_seconds",
			Help:      "Wall-clock duration of a renderer invocation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"renderer"}),
	}
	reg.MustRegister(m.renders, m.duration)
	return m
}

// Observe records one renderer invocation's duration.
func (m *RenderMetrics) Observe(renderer string, d time.Duration) {
	m.renders.WithLabelValues(renderer).Inc()
	m.duration.WithLabelValues(renderer).Observe(d.Seconds())
}
