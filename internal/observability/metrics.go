package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Store metrics
	StoreOperationsTotal   *prometheus.CounterVec
	StoreOperationDuration *prometheus.HistogramVec

	// Business metrics
	ProjectsCreatedTotal prometheus.Counter
	BilledValueTotal     prometheus.Counter
	BilledMinutesTotal   prometheus.Counter
}

// NewMetrics creates the collectors and registers them on registry.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "projects_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "projects_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		StoreOperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "projects_store_operations_total",
				Help: "Total number of store operations",
			},
			[]string{"operation", "outcome"},
		),
		StoreOperationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "projects_store_operation_duration_seconds",
				Help:    "Store operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),

		ProjectsCreatedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "projects_created_total",
			Help: "Total number of project records created",
		}),
		BilledValueTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "projects_billed_value_total",
			Help: "Sum of total_value over created records",
		}),
		BilledMinutesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "projects_billed_minutes_total",
			Help: "Sum of duration_minutes over created records",
		}),
	}

	if registry != nil {
		registry.MustRegister(
			m.HTTPRequestsTotal,
			m.HTTPRequestDuration,
			m.StoreOperationsTotal,
			m.StoreOperationDuration,
			m.ProjectsCreatedTotal,
			m.BilledValueTotal,
			m.BilledMinutesTotal,
		)
	}

	return m
}

// RecordHTTPRequest records one served request.
func (m *Metrics) RecordHTTPRequest(method, route, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordStoreOperation records one store call. outcome is "ok", "not_found"
// or "error".
func (m *Metrics) RecordStoreOperation(operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.StoreOperationsTotal.WithLabelValues(operation, outcome).Inc()
	m.StoreOperationDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// RecordProjectCreated adds a created record's figures to the business counters.
func (m *Metrics) RecordProjectCreated(durationMinutes, totalValue float64) {
	if m == nil {
		return
	}
	m.ProjectsCreatedTotal.Inc()
	m.BilledMinutesTotal.Add(durationMinutes)
	m.BilledValueTotal.Add(totalValue)
}
