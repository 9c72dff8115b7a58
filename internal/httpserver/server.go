package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"storefront-core/internal/domain"
	"storefront-core/internal/storage"
)

// Server wraps the stub CMS HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

// New builds a Server with the stub CMS routes.
func New(addr string, logger *log.Logger, deps Deps) (*Server, error) {
	router, err := buildRouter(logger, deps)
	if err != nil {
		return nil, err
	}

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
	}, nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// probeBackend checks the ticket backend is reachable; an absent probe key
// is a healthy answer.
func probeBackend(ctx context.Context, backend storage.Store) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	_, err := backend.Get(ctx, "cms.readyz.probe")
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}
