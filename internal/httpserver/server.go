package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/prismaglow/chatproxy/internal/auth"
	"github.com/prismaglow/chatproxy/internal/config"
	"github.com/prismaglow/chatproxy/internal/httpserver/middleware"
	"github.com/prismaglow/chatproxy/internal/observability"
)

// Server represents the HTTP server.
type Server struct {
	config      config.ServerConfig
	handler     *Handler
	verifier    auth.Verifier
	middlewares middleware.Middleware
	srv         *http.Server
}

// NewServer creates a new HTTP server.
func NewServer(
	cfg *config.ServerConfig,
	handler *Handler,
	verifier auth.Verifier,
	middlewares middleware.Middleware,
) *Server {
	return &Server{
		config:      *cfg,
		handler:     handler,
		verifier:    verifier,
		middlewares: middlewares,
		srv:         nil,
	}
}

// Router builds the route table. Exposed separately from Start so tests can
// exercise the full middleware and routing stack without a listener.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	// Health is unauthenticated.
	r.HandleFunc("/health", s.handler.HandleHealth).Methods(http.MethodGet)

	// Everything under the API prefix requires a verified session.
	api := r.PathPrefix("/api/openai/chat-completions").Subrouter()
	api.Use(mux.MiddlewareFunc(middleware.Auth(s.verifier)))
	api.HandleFunc("", s.handler.CreateCompletion).Methods(http.MethodPost)
	api.HandleFunc("", s.handler.ListCompletions).Methods(http.MethodGet)
	api.HandleFunc("/{id}", s.handler.GetCompletion).Methods(http.MethodGet)
	api.HandleFunc("/{id}", s.handler.UpdateCompletion).Methods(http.MethodPatch)
	api.HandleFunc("/{id}", s.handler.DeleteCompletion).Methods(http.MethodDelete)
	api.HandleFunc("/{id}/messages", s.handler.ListCompletionMessages).Methods(http.MethodGet)

	// Apply middleware chain.
	return s.middlewares(r)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	// The write deadline bounds buffered responses; the streaming handler
	// clears it per-request so long streams are not cut short.
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.Router(),
		ReadTimeout:  time.Duration(s.config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.config.WriteTimeout) * time.Second,
	}

	ctx := context.Background()
	observability.FromContext(ctx).Info("starting HTTP server", observability.Int("port", s.config.Port))

	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	observability.FromContext(ctx).Info("shutting down HTTP server")

	if s.srv == nil {
		return nil
	}

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
