// Package server wires the application together: storage, stores, services,
// handlers, routes, and graceful shutdown. This is the composition root;
// every dependency is assembled here and nowhere else.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/ruilin/inspiration-space/internal/backgrounds"
	"github.com/ruilin/inspiration-space/internal/handler"
	"github.com/ruilin/inspiration-space/internal/middleware"
	"github.com/ruilin/inspiration-space/internal/service"
	"github.com/ruilin/inspiration-space/internal/storage/sqlite"
	"github.com/ruilin/inspiration-space/internal/store"
)

// Config holds server configuration, read from the environment by main.
type Config struct {
	Port   int
	DBPath string
}

// Server owns the router and the resources that must be released on
// shutdown: the database connection and the stores' in-flight persists.
type Server struct {
	router      *chi.Mux
	config      Config
	logger      *slog.Logger
	db          *sqlite.DB
	store       *store.Store
	backgrounds *backgrounds.Store
}

// New builds the full dependency chain and hydrates both stores from the
// database. Hydration failures are absorbed inside the stores; New only
// fails when the database itself cannot be opened.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	recordStore := store.New(db, logger)
	recordStore.Hydrate(context.Background())

	bgStore := backgrounds.New(db, logger)
	bgStore.Hydrate(context.Background())

	s := &Server{
		router:      chi.NewRouter(),
		config:      cfg,
		logger:      logger,
		db:          db,
		store:       recordStore,
		backgrounds: bgStore,
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	svc := service.NewInspirationService(s.store, s.logger)
	inspirationHandler := handler.NewInspirationHandler(svc, s.logger)
	statsHandler := handler.NewStatsHandler(svc, s.logger)
	backgroundHandler := handler.NewBackgroundHandler(s.backgrounds, s.logger)

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/inspirations", inspirationHandler.HandleList)
		r.Post("/inspirations", inspirationHandler.HandleCreate)
		r.Get("/inspirations/{id}", inspirationHandler.HandleGetByID)
		r.Put("/inspirations/{id}", inspirationHandler.HandleUpdate)
		r.Delete("/inspirations/{id}", inspirationHandler.HandleDelete)

		r.Get("/categories/counts", inspirationHandler.HandleCategoryCounts)
		r.Get("/stats", statsHandler.HandleStats)

		r.Get("/backgrounds", backgroundHandler.HandleGet)
		r.Put("/backgrounds", backgroundHandler.HandleSet)
	})
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully: stop accepting connections, drain in-flight requests, wait for
// pending persists to reach the database, and close it.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}

		// Let the last mutation's background write land before the database
		// closes. Anything that still fails here was logged by the store.
		s.store.Flush()
		s.backgrounds.Flush()
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
