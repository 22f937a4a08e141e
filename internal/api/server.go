// internal/api/server.go

// Package api exposes the engine's outputs over a read-only HTTP interface:
// it parses filter changes into criteria, invokes the engine, and maps
// records to JSON rows for the rendering layer.
package api

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fundscope/internal/cache"
	"fundscope/internal/common/logger"
	"fundscope/internal/common/observability"
	"fundscope/internal/engine"
)

type Server struct {
	engine *engine.Engine
	cache  *cache.ResultCache // nil when caching is disabled
	obs    *observability.Observability
	logger logger.Logger
	mux    *http.ServeMux
}

func New(eng *engine.Engine, results *cache.ResultCache, obs *observability.Observability, log logger.Logger) *Server {
	s := &Server{
		engine: eng,
		cache:  results,
		obs:    obs,
		logger: log.WithFields(map[string]interface{}{"component": "api"}),
		mux:    http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.Handle("GET /metrics", promhttp.Handler())

	s.mux.HandleFunc("GET /api/companies", s.handleCompanies)
	s.mux.HandleFunc("GET /api/transactions", s.handleTransactions)
	s.mux.HandleFunc("GET /api/milestone-types", s.handleMilestoneTypes)
}

// Handler returns the full middleware-wrapped handler chain.
func (s *Server) Handler() http.Handler {
	return s.withRequestLogging(s.mux)
}

// NewHTTPServer builds the http.Server with the configured timeouts.
func (s *Server) NewHTTPServer(addr string, readTimeout, writeTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
}
