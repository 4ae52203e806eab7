// Package server wires the HTTP surface together: routing, CORS, and the
// health endpoint.
package server

import (
	"fmt"
	"net/http"
	"time"

	"whimsy/internal/auth"
	"whimsy/internal/config"
	"whimsy/internal/database"
	"whimsy/internal/sessions"
)

// Server holds the dependencies for the HTTP server
type Server struct {
	db              database.Service
	authHandler     *auth.Handler
	sessionsHandler *sessions.Handler
	verifier        auth.TokenVerifier
}

// New creates a new server with the given dependencies
func New(db database.Service, authHandler *auth.Handler, sessionsHandler *sessions.Handler, verifier auth.TokenVerifier) *Server {
	return &Server{
		db:              db,
		authHandler:     authHandler,
		sessionsHandler: sessionsHandler,
		verifier:        verifier,
	}
}

// NewHTTPServer builds the configured http.Server around the router
func (s *Server) NewHTTPServer(cfg *config.Config) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.RegisterRoutes(),
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
}
