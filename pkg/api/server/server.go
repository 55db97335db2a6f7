// Package server provides the HTTP server and routing for the metrics API.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/internal/config"
	companyhandlers "github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/api/company"
	historicalhandlers "github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/api/historical"
	metricshandlers "github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/api/metrics"
	reporthandlers "github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/api/report"
	searchhandlers "github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/api/search"
	"github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/cache"
	coremetrics "github.com/TanmaySarfare/Financial-Metrics-Analyzer/pkg/core/metrics"
)

// Config holds server configuration.
type Config struct {
	Log      zerolog.Logger
	Config   *config.Config
	Service  *coremetrics.Service
	Computer *cache.Computer
}

// Server represents the HTTP server.
type Server struct {
	router   *chi.Mux
	server   *http.Server
	log      zerolog.Logger
	cfg      *config.Config
	computer *cache.Computer
	service  *coremetrics.Service
}

// New creates a new HTTP server.
func New(cfg Config) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		log:      cfg.Log.With().Str("component", "server").Logger(),
		cfg:      cfg.Config,
		computer: cfg.Computer,
		service:  cfg.Service,
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Config.Addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware.
func (s *Server) setupMiddleware() {
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// Timeout
	s.router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
}

// setupRoutes configures all routes.
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	metricsHandler := metricshandlers.NewHandler(s.computer, s.service, s.log)
	companyHandler := companyhandlers.NewHandler(s.computer, s.service, s.log)
	searchHandler := searchhandlers.NewHandler(s.log)
	reportHandler := reporthandlers.NewHandler(s.computer, s.log)
	historicalHandler := historicalhandlers.NewHandler(s.log)

	// Legacy document endpoints, ticker in the path.
	s.router.Get("/metrics/{ticker}", metricsHandler.HandleMetrics)
	s.router.Get("/metrics/{ticker}/dump", metricsHandler.HandleDump)

	// API routes
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/metrics/simple", metricsHandler.HandleSimple)
		r.Get("/company/summary", companyHandler.HandleSummary)
		r.Get("/search", searchHandler.HandleSearch)
		r.Get("/report/{ticker}", reportHandler.HandleReport)
		r.Get("/historical/download", historicalHandler.HandleDownload)
	})
}

// handleHealth reports process liveness and cache occupancy.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	stats := s.computer.Stats()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"ok":    true,
		"cache": stats,
	}); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode health response")
	}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.cfg.Addr).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
