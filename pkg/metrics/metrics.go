// Package metrics registers the dashboard's Prometheus collectors.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collectors for upstream traffic and exports
type Metrics struct {
	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	exports          *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
// A nil reg leaves them unregistered, which is what tests want.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sipusaka",
			Name:      "upstream_requests_total",
			Help:      "Requests sent to the REST backend, by method and status.",
		}, []string{"method", "status"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sipusaka",
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of requests sent to the REST backend.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sipusaka",
			Name:      "exports_total",
			Help:      "Spreadsheet exports generated, by entity.",
		}, []string{"entity"}),
	}
	if reg != nil {
		reg.MustRegister(m.upstreamRequests, m.upstreamDuration, m.exports)
	}
	return m
}

// ObserveUpstream records one finished upstream call. status 0 means a transport error.
func (m *Metrics) ObserveUpstream(method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.upstreamRequests.WithLabelValues(method, label).Inc()
	m.upstreamDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// ObserveExport records one generated workbook
func (m *Metrics) ObserveExport(entity string) {
	if m == nil {
		return
	}
	m.exports.WithLabelValues(entity).Inc()
}
