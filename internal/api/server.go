package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dgallion1/qaboard/internal/config"
	"github.com/dgallion1/qaboard/internal/pipeline"
)

// Server is the HTTP API server for the question board's document services.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *pipeline.Orchestrator, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
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

	r.Route("/api", func(r chi.Router) {
		r.Use(RequireAPIKey(s.cfg.APIKey, s.log))

		r.Post("/documents/text", s.handleDocumentText)
		r.Post("/documents/import", s.handleDocumentImport)
		r.Post("/documents/images", s.handleListImages)
		r.Post("/documents/images/resize", s.handleResizeImage)

		r.Post("/questions/prompt", s.handleQuestionPrompt)

		r.Post("/exports", s.handleCreateExport)
		r.Post("/exports/markdown", s.handleMarkdownExport)
		r.Get("/exports/{jobID}", s.handleExportStatus)
		r.Get("/exports/{jobID}/download", s.handleExportDownload)

		r.Get("/stats/render", s.handleRenderStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
