// Package server exposes the simulation over HTTP and a websocket for live recomputation.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rpgo/rent-vs-buy/internal/cache"
	"github.com/rpgo/rent-vs-buy/internal/calculation"
	"github.com/rpgo/rent-vs-buy/internal/config"
	"github.com/rpgo/rent-vs-buy/internal/journal"
	"github.com/sirupsen/logrus"
)

// Server holds the HTTP handlers and their dependencies
type Server struct {
	settings config.ServerSettings
	engine   *calculation.CalculationEngine
	parser   *config.InputParser
	cache    cache.Cache
	cacheTTL time.Duration
	store    journal.Store
	logger   logrus.FieldLogger
	limiter  *RateLimiter
	upgrader websocket.Upgrader
}

// Option configures a Server
type Option func(*Server)

// WithCache caches GET simulations for ttl
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(s *Server) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

// WithJournal enables the /api/runs endpoints
func WithJournal(store journal.Store) Option {
	return func(s *Server) { s.store = store }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Server) { s.logger = l }
}

// WithEngine replaces the default calculation engine
func WithEngine(e *calculation.CalculationEngine) Option {
	return func(s *Server) { s.engine = e }
}

func New(settings config.ServerSettings, opts ...Option) *Server {
	s := &Server{
		settings: settings,
		engine:   calculation.NewCalculationEngine(),
		parser:   config.NewInputParser(),
		cache:    cache.Noop{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		s.logger = discard
	}
	if settings.RateLimit > 0 {
		s.limiter = NewRateLimiter(settings.RateLimit, settings.Burst)
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 64 * 1024,
		// The calculator is served to browsers on other origins
		CheckOrigin: func(*http.Request) bool { return true },
	}
	return s
}

// Handler builds the route table
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("GET /api/simulate", s.handleSimulateQuery)
	api.HandleFunc("POST /api/simulate", s.handleSimulateForm)
	api.HandleFunc("GET /api/breakeven", s.handleBreakEven)
	api.HandleFunc("POST /api/runs", s.handleSaveRun)
	api.HandleFunc("GET /api/runs", s.handleListRuns)
	api.HandleFunc("GET /api/runs/{id}", s.handleGetRun)

	var apiHandler http.Handler = api
	if s.limiter != nil {
		apiHandler = RateLimitMiddleware(s.limiter, apiHandler)
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", LoggingMiddleware(s.logger, apiHandler))
	mux.HandleFunc("GET /ws", s.handleWebsocket)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.settings.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.settings.ReadTimeout,
		WriteTimeout: s.settings.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", s.settings.Addr).Info("rent-vs-buy API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("shutting down server")
	}

	timeout := s.settings.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	s.logger.Info("server exited")
	return nil
}

// Close releases background resources
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
}
