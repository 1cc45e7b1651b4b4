// Package api provides the HTTP API for graphtint.
//
// The server wraps a pipeline.Runner, so API requests share caching and
// logging behavior with the CLI. All responses are JSON; errors carry the
// structured code of the underlying failure so clients can distinguish bad
// input from server faults.
package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/graphtint/graphtint/pkg/observability"
	"github.com/graphtint/graphtint/pkg/pipeline"
)

// Server handles HTTP requests for the coloring pipeline.
type Server struct {
	runner  *pipeline.Runner
	logger  *log.Logger
	version string
}

// NewServer creates an API server around the given runner.
func NewServer(runner *pipeline.Runner, logger *log.Logger, version string) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		runner:  runner,
		logger:  logger,
		version: version,
	}
}

// Router builds the HTTP router with all routes registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/color", s.handleColor)
		r.Post("/generate", s.handleGenerate)
		r.Get("/strategies", s.handleStrategies)
	})

	return r
}

// observe logs each request and feeds the HTTP observability hooks.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), duration)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", duration)
	})
}

// newRunID generates a unique identifier for one pipeline invocation.
func newRunID() string {
	return uuid.New().String()
}
