// ABOUTME: HTTP server wiring for portfolio-api
// ABOUTME: Builds the route table and runs the server with graceful shutdown

package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/devfolio/portfolio-api/internal/auth"
	"github.com/devfolio/portfolio-api/internal/content"
	"github.com/devfolio/portfolio-api/internal/store"
)

// Server serves the portfolio HTTP API.
type Server struct {
	addr       string
	store      store.Store
	auth       *auth.Service
	content    *content.Service
	cors       []string
	logger     *slog.Logger
	httpServer *http.Server
}

// New creates a server. allowedOrigins configures CORS; empty means allow all.
func New(addr string, st store.Store, authSvc *auth.Service, contentSvc *content.Service, allowedOrigins []string) *Server {
	return &Server{
		addr:    addr,
		store:   st,
		auth:    authSvc,
		content: contentSvc,
		cors:    allowedOrigins,
		logger:  slog.Default().With("component", "api"),
	}
}

// Routes builds the route table with middleware applied.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	// Public status and content
	mux.HandleFunc("GET /{$}", s.handleStatus)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /certifications", s.handleListCertifications)
	mux.HandleFunc("GET /projects", s.handleListProjects)
	mux.HandleFunc("GET /blog", s.handleListPosts)
	mux.HandleFunc("GET /social", s.handleGetSocial)
	mux.HandleFunc("GET /resume", s.handleGetResume)

	// Auth
	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/token", s.handleToken)

	// Admin content management, bearer token required
	requireAuth := auth.RequireAuth(s.auth)
	mux.Handle("POST /admin/certifications", requireAuth(http.HandlerFunc(s.handleAddCertification)))
	mux.Handle("POST /admin/projects", requireAuth(http.HandlerFunc(s.handleAddProject)))
	mux.Handle("POST /admin/blog", requireAuth(http.HandlerFunc(s.handleAddPost)))
	mux.Handle("POST /admin/social", requireAuth(http.HandlerFunc(s.handleSetSocial)))
	mux.Handle("POST /admin/resume", requireAuth(http.HandlerFunc(s.handleSetResume)))

	var handler http.Handler = mux
	handler = corsMiddleware(s.cors)(handler)
	handler = requestLogMiddleware(s.logger)(handler)
	handler = recoveryMiddleware(s.logger)(handler)
	return handler
}

// Run serves HTTP until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:    s.addr,
		Handler: s.Routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", s.addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var serverErr error
	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	case err := <-errCh:
		serverErr = fmt.Errorf("http server: %w", err)
	}

	shutdownErr := s.gracefulShutdown()

	if serverErr != nil {
		return serverErr
	}
	return shutdownErr
}

// gracefulShutdown performs shutdown with a fresh context and timeout.
// Uses context.Background() intentionally since the original context is already canceled.
func (s *Server) gracefulShutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
