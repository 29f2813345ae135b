package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/moviarr/moviarr/internal/api/handlers"
	"github.com/moviarr/moviarr/internal/api/middleware"
	"github.com/moviarr/moviarr/internal/config"
	"github.com/moviarr/moviarr/internal/models"
	"github.com/moviarr/moviarr/internal/utils"
	"github.com/sirupsen/logrus"
)

// Server represents the HTTP server
type Server struct {
	server *http.Server
	logger *logrus.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, db *models.Database, accessLog *utils.AccessLog, logger *logrus.Logger) *Server {
	s := &Server{
		logger: logger,
	}

	s.server = &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      Routes(db, accessLog, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Routes configures the router and wraps it in the middleware chain.
// Chain (outermost to innermost): Logging, Recover, router.
func Routes(db *models.Database, accessLog *utils.AccessLog, logger *logrus.Logger) http.Handler {
	router := httprouter.New()

	// Unmatched routes and wrong verbs get structured JSON responses
	router.NotFound = http.HandlerFunc(handlers.NotFound)
	router.MethodNotAllowed = http.HandlerFunc(handlers.MethodNotAllowed)

	// Greeting
	router.HandlerFunc(http.MethodGet, "/", handlers.Root)

	// Movie CRUD
	movieHandler := handlers.NewMovieHandler(db, logger)
	router.HandlerFunc(http.MethodGet, "/api/movies", movieHandler.List)
	router.HandlerFunc(http.MethodPost, "/api/movies", movieHandler.Create)
	router.HandlerFunc(http.MethodPut, "/api/movies/:id", movieHandler.Update)
	router.HandlerFunc(http.MethodDelete, "/api/movies/:id", movieHandler.Delete)

	// Health check
	router.HandlerFunc(http.MethodGet, "/health", handlers.Health)

	// Status endpoint
	statusHandler := handlers.NewStatusHandler(db, logger)
	router.HandlerFunc(http.MethodGet, "/status", statusHandler.ServeHTTP)

	// API documentation
	router.HandlerFunc(http.MethodGet, "/api-docs", handlers.Docs)
	router.HandlerFunc(http.MethodGet, "/api-docs/openapi.json", handlers.OpenAPI)

	return middleware.Logging(middleware.Recover(router, logger), logger, accessLog)
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	s.logger.WithField("port", s.server.Addr).Info("Starting HTTP server")

	errChan := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}
