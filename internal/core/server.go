// Package core provides the API chassis for the plancheck service: a chi
// router with the cross-cutting middleware chain (panic recovery, request
// correlation, structured request logging, CORS), the response envelope
// helpers, request validation, and health probing. Domain handlers mount
// onto the chassis through route registrars.
package core

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"plancheck/internal/config"
)

// RouteRegistrar mounts a group of domain routes onto the /v1 router. The
// indirection keeps core free of handler imports.
type RouteRegistrar func(r chi.Router)

// Server bundles the dependencies of the HTTP surface so tests can inject
// their own configuration, logger, and probes.
type Server struct {
	Config    *config.Config
	Logger    *slog.Logger
	Validator *Validator

	// HealthProbes are checked by GET /healthz.
	HealthProbes []HealthProbe
	// V1RouteRegistrars are mounted under /v1 by MountRoutes.
	V1RouteRegistrars []RouteRegistrar

	router  *chi.Mux
	closers []func() // resource teardown, run in reverse on Shutdown
}

// NewServer constructs the chassis. Routes are mounted separately via
// MountRoutes so tests can customize registration.
func NewServer(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}

	return &Server{
		Config:    cfg,
		Logger:    logger,
		Validator: NewValidator(),
		router:    chi.NewRouter(),
	}, nil
}

// Handler returns the router as an http.Handler for ListenAndServe.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Router returns the underlying chi.Mux for route registration in tests.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// OnShutdown registers a teardown function, run in reverse registration
// order during Shutdown. Used for closing the database pool.
func (s *Server) OnShutdown(fn func()) {
	s.closers = append(s.closers, fn)
}

// Shutdown releases server-held resources.
func (s *Server) Shutdown(ctx context.Context) error {
	s.Logger.Info("server shutdown initiated")
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.Logger.Info("server shutdown complete")
	return nil
}
