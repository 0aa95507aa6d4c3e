package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/localspot/business-directory/internal/domain"
	"github.com/localspot/business-directory/internal/repository"
)

func TestCorrelationIDMiddleware(t *testing.T) {
	t.Run("propagates an inbound correlation ID", func(t *testing.T) {
		srv := newTestServer(nil)

		req := httptest.NewRequest(http.MethodGet, "/businesses", nil)
		req.Header.Set("X-Correlation-ID", "corr-123")
		rr := serveHTTP(srv, req)

		if got := rr.Header().Get("X-Correlation-ID"); got != "corr-123" {
			t.Errorf("expected correlation ID to round-trip, got %q", got)
		}
	})

	t.Run("assigns a correlation ID when absent", func(t *testing.T) {
		srv := newTestServer(nil)

		rr := serveHTTP(srv, httptest.NewRequest(http.MethodGet, "/businesses", nil))

		if rr.Header().Get("X-Correlation-ID") == "" {
			t.Error("expected a generated correlation ID header")
		}
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	repos := make(map[domain.Resource]repository.ResourceRepository)
	for _, res := range domain.Resources() {
		repos[res] = &mockResourceRepo{resource: res}
	}

	s := &Server{
		repos:   repos,
		logger:  zerolog.Nop(),
		limiter: rate.NewLimiter(rate.Limit(1), 1),
	}
	s.router = s.buildRouter()

	// The single burst token admits the first request.
	rr := serveHTTP(s, httptest.NewRequest(http.MethodGet, "/businesses", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", rr.Code)
	}

	// The bucket is now empty.
	rr = serveHTTP(s, httptest.NewRequest(http.MethodGet, "/businesses", nil))
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", rr.Code)
	}
}
