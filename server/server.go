// Package server exposes the planner over HTTP.
//
// Routes:
//
//	POST /ruta          plan a trip ({"inicio", "fin"} or {"origin", "destination"})
//	POST /api/route     same as /ruta
//	GET  /api/stations  stations with position and lines
//	GET  /api/lines     lines with color and ordered stations
//	GET  /healthz       liveness and network size
package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/metroroute/planner"
)

// HeaderRequestID carries the per-request identifier.
const HeaderRequestID = "X-Request-ID"

// ShutdownTimeout bounds how long Run waits for in-flight requests.
const ShutdownTimeout = 10 * time.Second

// Server routes HTTP requests to a Planner.
type Server struct {
	planner *planner.Planner
	logger  *slog.Logger
	router  *mux.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a Server over p.
func New(p *planner.Planner, opts ...Option) *Server {
	s := &Server{
		planner: p,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		router:  mux.NewRouter(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()

	return s
}

func (s *Server) routes() {
	r := s.router
	r.Use(s.requestID, s.logRequests)

	r.HandleFunc("/ruta", s.handleRoute).Methods(http.MethodPost)
	r.HandleFunc("/api/route", s.handleRoute).Methods(http.MethodPost)
	r.HandleFunc("/api/stations", s.handleStations).Methods(http.MethodGet)
	r.HandleFunc("/api/lines", s.handleLines).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string, readTimeout, writeTimeout time.Duration) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "addr", addr)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
