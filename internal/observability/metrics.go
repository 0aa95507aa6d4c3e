package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/localspot/business-directory/internal/domain"
)

// Metrics contains all Prometheus metrics for the business directory service.
// Metrics are organized by subsystem: HTTP traffic, resource operations, and
// rate limiting. All counters and histograms are registered via promauto for
// automatic registration with the default Prometheus registry.
type Metrics struct {
	// HTTPRequestsTotal counts HTTP requests, labeled by method, route pattern, and status code.
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration observes HTTP request duration in seconds, labeled by method and route pattern.
	HTTPRequestDuration *prometheus.HistogramVec

	// ResourceOperations counts resource operations, labeled by resource and operation
	// (create, read, update, delete, list).
	ResourceOperations *prometheus.CounterVec

	// ValidationFailures counts rejected request bodies, labeled by resource.
	ValidationFailures *prometheus.CounterVec

	// PagesServed counts list pages served, labeled by resource.
	PagesServed *prometheus.CounterVec

	// NotFoundTotal counts lookups of absent records, labeled by resource.
	NotFoundTotal *prometheus.CounterVec

	// RateLimitedTotal counts requests rejected by the rate limiter.
	RateLimitedTotal prometheus.Counter
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
// The namespace is used as a prefix for all metric names.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ResourceOperations: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resource_operations_total",
			Help:      "Total number of resource operations",
		}, []string{"resource", "operation"}),
		ValidationFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Total number of request bodies rejected by schema validation",
		}, []string{"resource"}),
		PagesServed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pages_served_total",
			Help:      "Total number of list pages served",
		}, []string{"resource"}),
		NotFoundTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "not_found_total",
			Help:      "Total number of lookups that matched no record",
		}, []string{"resource"}),
		RateLimitedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Total number of requests rejected by the rate limiter",
		}),
	}
}

// RecordRequest records one completed HTTP request.
func (m *Metrics) RecordRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordResourceOperation records one successful resource operation.
func (m *Metrics) RecordResourceOperation(resource domain.Resource, operation string) {
	m.ResourceOperations.WithLabelValues(string(resource), operation).Inc()
}

// RecordValidationFailure records a request body rejected by schema validation.
func (m *Metrics) RecordValidationFailure(resource domain.Resource) {
	m.ValidationFailures.WithLabelValues(string(resource)).Inc()
}

// RecordPageServed records one list page served.
func (m *Metrics) RecordPageServed(resource domain.Resource) {
	m.PagesServed.WithLabelValues(string(resource)).Inc()
}

// RecordNotFound records a lookup that matched no record.
func (m *Metrics) RecordNotFound(resource domain.Resource) {
	m.NotFoundTotal.WithLabelValues(string(resource)).Inc()
}

// RecordRateLimited records a request rejected by the rate limiter.
func (m *Metrics) RecordRateLimited() {
	m.RateLimitedTotal.Inc()
}
