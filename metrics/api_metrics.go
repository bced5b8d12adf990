package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// APIRequestCounter counts outgoing back-office API calls
	APIRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backoffice_api_requests_total",
			Help: "Total number of back-office API requests",
		},
		[]string{"service", "resource", "operation", "status"},
	)

	// APIRequestDuration records outgoing API call duration in seconds
	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backoffice_api_request_duration_seconds",
			Help:    "Duration of back-office API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "resource", "operation", "status"},
	)

	// ScopeUnresolvedCounter counts operations suppressed because no tenant was resolved
	ScopeUnresolvedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backoffice_scope_unresolved_total",
			Help: "Total number of operations suppressed because the tenant scope was unresolved",
		},
		[]string{"service", "resource", "operation"},
	)

	// ValidationFailureCounter counts create/update calls rejected by the backend
	ValidationFailureCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backoffice_validation_failures_total",
			Help: "Total number of create/update requests rejected with validation errors",
		},
		[]string{"service", "resource"},
	)

	registerAPIOnce sync.Once
)

// APIMetrics records metrics for outgoing back-office API calls
type APIMetrics struct {
	ServiceName string
}

// NewAPIMetrics creates a new API metrics collector for a specific service
func NewAPIMetrics(serviceName string) *APIMetrics {
	m := &APIMetrics{
		ServiceName: serviceName,
	}
	registerAPIOnce.Do(func() {
		prometheus.MustRegister(APIRequestCounter)
		prometheus.MustRegister(APIRequestDuration)
		prometheus.MustRegister(ScopeUnresolvedCounter)
		prometheus.MustRegister(ValidationFailureCounter)
	})
	return m
}

// RecordRequest records a completed API call. A status of 0 means the request
// never produced a response (network failure).
func (m *APIMetrics) RecordRequest(resource, operation string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	statusStr := strconv.Itoa(status)
	APIRequestCounter.WithLabelValues(m.ServiceName, resource, operation, statusStr).Inc()
	APIRequestDuration.WithLabelValues(m.ServiceName, resource, operation, statusStr).Observe(duration.Seconds())
}

// RecordScopeUnresolved records an operation that was suppressed client-side
func (m *APIMetrics) RecordScopeUnresolved(resource, operation string) {
	if m == nil {
		return
	}
	ScopeUnresolvedCounter.WithLabelValues(m.ServiceName, resource, operation).Inc()
}

// RecordValidationFailure records a create/update rejected by the backend
func (m *APIMetrics) RecordValidationFailure(resource string) {
	if m == nil {
		return
	}
	ValidationFailureCounter.WithLabelValues(m.ServiceName, resource).Inc()
}
