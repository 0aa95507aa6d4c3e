// Package observability provides logging and metrics support for the
// business directory service.
//
// # Overview
//
// The observability package provides:
//
//   - Structured logging with zerolog
//   - Prometheus metrics for HTTP traffic and resource operations
//   - Context helpers for propagating request identifiers
//
// # Logging
//
// Create a logger from configuration:
//
//	cfg := observability.LoggingConfig{
//	    Level:  "info",
//	    Format: "json",
//	    Output: "stdout",
//	}
//
//	logger := observability.NewLogger(cfg)
//	logger.Info().Str("request_id", reqID).Msg("request received")
//
// Add resource context to a logger:
//
//	logger = observability.WithResourceContext(logger, domain.ResourceBusiness, id)
//
// # Metrics
//
// Initialize metrics:
//
//	metrics := observability.NewMetrics("business_directory")
//
// Record metrics:
//
//	metrics.RecordResourceOperation(domain.ResourceBusiness, "create")
//	metrics.RecordValidationFailure(domain.ResourceReview)
//
// # Context Helpers
//
// Store and retrieve request identifiers:
//
//	ctx = observability.WithRequestID(ctx, requestID)
//	reqID := observability.RequestIDFromContext(ctx)
//
// # Standard Fields
//
// Common fields used across the service:
//
//   - request_id: HTTP request identifier
//   - resource: Resource collection (businesses, reviews, photos, users)
//   - resource_id: Numeric record identifier
//   - method, path, status: HTTP request attributes
//
// # Thread Safety
//
// All components are safe for concurrent use from multiple goroutines.
package observability
