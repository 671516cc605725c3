// Package rest exposes the authentication service over JSON/HTTP.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/groovestream/users/internal/logging"
	"github.com/groovestream/users/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address string
	logger  logging.Logger
	service *services.Service
}

func NewServer(address string, logger logging.Logger, service *services.Service) *Server {
	return &Server{
		address: address,
		logger:  logger.With("module", "rest_server"),
		service: service,
	}
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	r.Get("/", s.handleHealth)

	r.Route("/api/v1/user", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.authenticate)
			r.Get("/me", s.handleMe)
		})
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("server is running"))
}
