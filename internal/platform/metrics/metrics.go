// Package metrics registers the Prometheus instruments for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	AuthFailures    prometheus.Counter
	RecordsWritten  *prometheus.CounterVec
	RecordsDeleted  *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New creates and registers all metrics on reg. Tests pass a private registry
// to avoid duplicate-registration panics.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "casetrack_http_requests_total",
			Help: "HTTP requests received, by method and status class.",
		}, []string{"method", "status"}),
		AuthFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "casetrack_auth_failures_total",
			Help: "Requests rejected by the auth gate or failed logins.",
		}),
		RecordsWritten: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "casetrack_records_written_total",
			Help: "Case and note records created or updated.",
		}, []string{"kind"}),
		RecordsDeleted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "casetrack_records_deleted_total",
			Help: "Case and note records deleted.",
		}, []string{"kind"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "casetrack_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}
}
