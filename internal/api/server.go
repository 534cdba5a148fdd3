package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/pdfoutline/internal/batch"
	"github.com/dgallion1/pdfoutline/internal/config"
	"github.com/dgallion1/pdfoutline/internal/outline"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API for on-demand outline extraction.
type Server struct {
	router       chi.Router
	orchestrator *batch.Orchestrator
	extractor    *outline.Extractor
	stats        *batch.ExtractStats
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *batch.Orchestrator, ex *outline.Extractor, stats *batch.ExtractStats, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		extractor:    ex,
		stats:        stats,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		// Auth is opt-in: without a configured key the API is open.
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey))
		}

		r.Post("/api/outline", s.handleExtract)
		r.Post("/api/outline/batch", s.handleBatchSubmit)
		r.Get("/api/outline/{jobID}", s.handleJobStatus)
		r.Get("/api/stats/extract", s.handleStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
