// Package telemetry provides a Prometheus-backed implementation of
// bptree.Recorder, decoupled from the tree itself so the core package
// never imports a metrics client directly.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds the Prometheus collectors shared across every tree a
// process manages. Use ForTree to get a per-tree bptree.Recorder.
type Metrics struct {
	opsTotal    *prometheus.CounterVec
	opDuration  *prometheus.HistogramVec
	treeHeight  *prometheus.GaugeVec
	treeKeys    *prometheus.GaugeVec
}

// NewMetrics creates and registers the collectors against the default
// Prometheus registry.
func NewMetrics() *Metrics {
	return &Metrics{
		opsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bptreedb_tree_operations_total",
				Help: "Total number of operations performed against a tree.",
			},
			[]string{"tree", "operation", "status"},
		),
		opDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bptreedb_tree_operation_duration_seconds",
				Help:    "Operation duration in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"tree", "operation"},
		),
		treeHeight: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "bptreedb_tree_height",
				Help: "Current height of a tree.",
			},
			[]string{"tree"},
		),
		treeKeys: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "bptreedb_tree_keys",
				Help: "Current number of keys in a tree.",
			},
			[]string{"tree"},
		),
	}
}

// ForTree returns a recorder that labels every observation with name,
// letting several trees share one Metrics without clashing series.
func (m *Metrics) ForTree(name string) *TreeRecorder {
	return &TreeRecorder{m: m, name: name}
}

// TreeRecorder implements bptree.Recorder for a single named tree.
type TreeRecorder struct {
	m    *Metrics
	name string
}

// ObserveOp implements bptree.Recorder.
func (r *TreeRecorder) ObserveOp(op string, dur time.Duration, err error) {
	status := statusSuccess
	if err != nil {
		status = statusError
	}
	r.m.opsTotal.WithLabelValues(r.name, op, status).Inc()
	r.m.opDuration.WithLabelValues(r.name, op).Observe(dur.Seconds())
}

// SetHeight implements bptree.Recorder.
func (r *TreeRecorder) SetHeight(h int) {
	r.m.treeHeight.WithLabelValues(r.name).Set(float64(h))
}

// SetCount implements bptree.Recorder.
func (r *TreeRecorder) SetCount(n int) {
	r.m.treeKeys.WithLabelValues(r.name).Set(float64(n))
}
