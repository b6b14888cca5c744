package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dgallion1/mhrisk/internal/render"
	"github.com/dgallion1/mhrisk/internal/stats"
)

// Server is the HTTP host for the report page.
type Server struct {
	router chi.Router
	page   *render.Page
	stats  *stats.Recorder
	log    *slog.Logger
}

// NewServer creates and configures the HTTP server.
func NewServer(page *render.Page, rec *stats.Recorder, log *slog.Logger) *Server {
	s := &Server{
		page:  page,
		stats: rec,
		log:   log,
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

	r.Get("/health", s.handleHealth)

	r.Get("/", s.handlePage)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(render.Static()))))
	r.Get("/export.docx", s.handleExport)

	r.Route("/api", func(r chi.Router) {
		r.Get("/sections", s.handleListSections)
		r.Get("/sections/{slug}", s.handleGetSection)
		r.Get("/stats/render", s.handleRenderStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
