// Package debugserver exposes pprof endpoints and the latest comparison
// result over HTTP while a benchmark process is running.
package debugserver

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"distbench/domain/bench"
	"distbench/internal"
)

// Server serves /debug/pprof/* plus a JSON view of the most recent run
type Server struct {
	router *chi.Mux
	addr   string
	log    *internal.Logger

	mu     sync.RWMutex
	latest *bench.Comparison
}

// New creates a server listening on addr when started
func New(addr string, logger *internal.Logger) *Server {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	s := &Server{addr: addr, log: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Mount("/debug", middleware.Profiler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/runs/latest", s.handleLatest)
	s.router = r

	return s
}

// Handler returns the route tree, for embedding and tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// SetLatest publishes the most recent comparison
func (s *Server) SetLatest(cmp *bench.Comparison) {
	s.mu.Lock()
	s.latest = cmp
	s.mu.Unlock()
}

// Start blocks serving HTTP on the configured address
func (s *Server) Start() error {
	s.log.Info("debug server listening on %s", s.addr)
	return http.ListenAndServe(s.addr, s.router)
}

func (s *Server) handleLatest(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	latest := s.latest
	s.mu.RUnlock()

	if latest == nil {
		http.Error(w, "no comparison run yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(latest); err != nil {
		s.log.Error("failed to encode latest comparison: %v", err)
	}
}
