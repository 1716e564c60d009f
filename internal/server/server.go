// Package server exposes the canvas engine over HTTP.
//
// All endpoints take and return JSON. Documents and elements use the same
// format as pkg/io, and loosely typed element input is sanitized before use.
//
//	GET  /healthz      liveness check
//	GET  /metrics      prometheus metrics
//	POST /v1/run       run a pipeline operation over a document
//	POST /v1/snap      alignment guides for a dragged element
//	POST /v1/resize    new bounds for a resize handle drag
//	POST /v1/zoom      new scale and pan for a wheel event
//	POST /v1/clip      clip polygon of an image inside a frame
//	POST /v1/bounds    content bounds and fit viewport
//	POST /v1/select    elements inside a selection rectangle
//
// Errors are returned as {"error": {"code": ..., "message": ...}} with a
// status derived from the error code.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	gorillahandlers "github.com/gorilla/handlers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/kanvax/pkg/config"
	"github.com/matzehuels/kanvax/pkg/observability"
	"github.com/matzehuels/kanvax/pkg/pipeline"
)

const (
	maxBodyBytes    = 8 << 20
	readTimeout     = 15 * time.Second
	writeTimeout    = 15 * time.Second
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Server serves the HTTP API.
type Server struct {
	cfg     config.Config
	runner  *pipeline.Runner
	logger  *log.Logger
	metrics *metrics
	limiter *limiter
}

// New creates a server. A nil logger uses the default charm logger. Pipeline
// run metrics are reported through the global observability hooks, so the
// last server created owns them.
func New(cfg config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		cfg:     cfg,
		runner:  pipeline.NewRunner(cfg, logger),
		logger:  logger,
		metrics: newMetrics(prometheus.NewRegistry()),
	}
	observability.SetPipelineHooks(s.metrics.pipeline)
	if cfg.Server.RateLimit > 0 {
		s.limiter = newLimiter(cfg.Server.RateLimit, cfg.Server.Burst)
	}
	return s
}

// Handler returns the routed HTTP handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.recoverer)
	r.Use(s.requestLogger)
	r.Use(s.metrics.middleware)
	if s.limiter != nil {
		r.Use(s.limiter.middleware)
	}

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/run", s.handleRun)
		r.Post("/snap", s.handleSnap)
		r.Post("/resize", s.handleResize)
		r.Post("/zoom", s.handleZoom)
		r.Post("/clip", s.handleClip)
		r.Post("/bounds", s.handleBounds)
		r.Post("/select", s.handleSelect)
	})

	origins := s.cfg.Server.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins(origins),
		gorillahandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type"}),
	)(r)
}

// ListenAndServe serves on the configured address until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	if s.limiter != nil {
		go s.limiter.cleanup(ctx, time.Minute)
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return ctx.Err()
}
