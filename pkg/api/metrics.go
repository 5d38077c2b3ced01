package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// httpMetrics holds the Prometheus collectors for the admin surface's
// own request handling, distinct from pkg/telemetry's per-tree
// operation metrics.
type httpMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

var metrics = newHTTPMetrics()

func newHTTPMetrics() *httpMetrics {
	return &httpMetrics{
		requestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bptreedb_http_requests_total",
				Help: "Total number of admin API requests.",
			},
			[]string{"method", "route", "status_code"},
		),
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bptreedb_http_request_duration_seconds",
				Help:    "Admin API request duration in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// instrument wraps a handler so every request updates requestsTotal
// and requestDuration under the given route label (the chi pattern,
// not the resolved path, so distinct keys don't create distinct
// series).
func instrument(method, route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}
		h(rw, r)
		metrics.requestsTotal.WithLabelValues(method, route, strconv.Itoa(rw.statusCode)).Inc()
		metrics.requestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

type statusWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}
