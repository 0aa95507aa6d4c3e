// Package httpserver provides the HTTP REST API server for the business directory service.
package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/localspot/business-directory/internal/database"
	"github.com/localspot/business-directory/internal/domain"
	"github.com/localspot/business-directory/internal/observability"
	"github.com/localspot/business-directory/internal/repository"
)

// Server is the HTTP REST API server.
type Server struct {
	router     chi.Router
	httpServer *http.Server
	repos      map[domain.Resource]repository.ResourceRepository
	db         *database.DB
	logger     zerolog.Logger
	metrics    *observability.Metrics
	limiter    *rate.Limiter
}

// Config holds HTTP server configuration.
type Config struct {
	Address          string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	ShutdownTimeout  time.Duration
	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int
}

// NewServer creates a new HTTP server with all dependencies.
// The repos map must contain one repository per registered resource type.
func NewServer(
	cfg Config,
	repos map[domain.Resource]repository.ResourceRepository,
	db *database.DB,
	logger zerolog.Logger,
	metrics *observability.Metrics,
) *Server {
	s := &Server{
		repos:   repos,
		db:      db,
		logger:  logger.With().Str("component", "http-server").Logger(),
		metrics: metrics,
	}

	if cfg.RateLimitEnabled {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	}

	s.router = s.buildRouter()

	s.httpServer = &http.Server{
		Addr:         cfg.Address,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// buildRouter creates the chi router with all middleware and routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(correlationIDMiddleware)
	r.Use(s.metricsMiddleware)
	if s.limiter != nil {
		r.Use(s.rateLimitMiddleware)
	}

	// Health endpoints
	r.Get("/healthz", s.healthHandler)
	r.Get("/readyz", s.readinessHandler)

	// Every resource collection gets the same five routes; the handlers
	// close over the resource so the engine stays generic.
	for _, res := range domain.Resources() {
		res := res
		r.Route("/"+string(res), func(r chi.Router) {
			r.Post("/", s.createResource(res))
			r.Get("/", s.listResources(res))
			r.Get("/{id}", s.getResource(res))
			r.Put("/{id}", s.updateResource(res))
			r.Delete("/{id}", s.deleteResource(res))

			if res == domain.ResourceUser {
				r.Get("/{id}/businesses", s.listUserBusinesses)
				r.Get("/{id}/reviews", s.listUsersWithRelated(domain.ResourceReview))
				r.Get("/{id}/photos", s.listUsersWithRelated(domain.ResourcePhoto))
			}
		})
	}

	return r
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.Info().Str("address", s.httpServer.Addr).Msg("HTTP server starting")
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on HTTP address: %w", err)
	}
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// healthHandler returns basic liveness status.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	health := s.db.Health(r.Context())
	if health.Status == "healthy" {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "database": health.Status})
		return
	}
	writeJSON(w, http.StatusServiceUnavailable, map[string]string{
		"status":   "unhealthy",
		"database": health.Status,
		"error":    health.Error,
	})
}

// readinessHandler returns readiness status based on database connectivity.
func (s *Server) readinessHandler(w http.ResponseWriter, r *http.Request) {
	health := s.db.Health(r.Context())
	if health.Status != "healthy" {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "not_ready",
			"database": health.Status,
			"error":    health.Error,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ready",
		"database": "healthy",
	})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Best-effort; headers already sent.
		_ = err
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{
		"error": message,
	})
}
