package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localspot/business-directory/internal/domain"
)

// Note: prometheus/promauto registers metrics globally, so we need to use
// unique namespaces per test to avoid registration conflicts.

func TestNewMetrics(t *testing.T) {
	m := NewMetrics("test_directory_new")

	assert.NotNil(t, m.HTTPRequestsTotal)
	assert.NotNil(t, m.HTTPRequestDuration)
	assert.NotNil(t, m.ResourceOperations)
	assert.NotNil(t, m.ValidationFailures)
	assert.NotNil(t, m.PagesServed)
	assert.NotNil(t, m.NotFoundTotal)
	assert.NotNil(t, m.RateLimitedTotal)
}

func TestRecordRequest(t *testing.T) {
	m := NewMetrics("test_directory_request")

	m.RecordRequest("GET", "/businesses", 200, 42*time.Millisecond)
	m.RecordRequest("GET", "/businesses", 200, 10*time.Millisecond)
	m.RecordRequest("POST", "/businesses", 400, 5*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/businesses", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/businesses", "400")))

	count, err := getHistogramSampleCount(m.HTTPRequestDuration.WithLabelValues("GET", "/businesses"))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count)
}

// getHistogramSampleCount extracts the observation count from a histogram.
func getHistogramSampleCount(h prometheus.Observer) (uint64, error) {
	collector, ok := h.(prometheus.Metric)
	if !ok {
		return 0, nil
	}

	var metric dto.Metric
	if err := collector.Write(&metric); err != nil {
		return 0, err
	}
	return metric.Histogram.GetSampleCount(), nil
}

func TestRecordResourceOperation(t *testing.T) {
	m := NewMetrics("test_directory_ops")

	m.RecordResourceOperation(domain.ResourceBusiness, "create")
	m.RecordResourceOperation(domain.ResourceBusiness, "create")
	m.RecordResourceOperation(domain.ResourceReview, "delete")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.ResourceOperations.WithLabelValues("businesses", "create")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ResourceOperations.WithLabelValues("reviews", "delete")))
}

func TestRecordValidationFailure(t *testing.T) {
	m := NewMetrics("test_directory_validation")

	m.RecordValidationFailure(domain.ResourcePhoto)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.ValidationFailures.WithLabelValues("photos")))
}

func TestRecordPageServedAndNotFound(t *testing.T) {
	m := NewMetrics("test_directory_pages")

	m.RecordPageServed(domain.ResourceUser)
	m.RecordNotFound(domain.ResourceUser)
	m.RecordNotFound(domain.ResourceUser)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.PagesServed.WithLabelValues("users")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.NotFoundTotal.WithLabelValues("users")))
}

func TestRecordRateLimited(t *testing.T) {
	m := NewMetrics("test_directory_ratelimit")

	initial := testutil.ToFloat64(m.RateLimitedTotal)
	m.RecordRateLimited()
	assert.Equal(t, initial+1, testutil.ToFloat64(m.RateLimitedTotal))
}
