// Package main is the entry point for the itinerary API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/pkordes/itinerary/internal/config"
	"github.com/pkordes/itinerary/internal/handler"
	"github.com/pkordes/itinerary/internal/middleware"
	"github.com/pkordes/itinerary/internal/repo"
	"github.com/pkordes/itinerary/internal/service"
	"github.com/pkordes/itinerary/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	// A local .env is optional and never overrides the real environment.
	if err := config.LoadDotEnv(envFile()); err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		// The default logger writes to stderr until ours is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// --- Storage ----------------------------------------------------------
	repos, closeStorage, err := openStorage(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to open storage", "storage", cfg.Storage, "error", err)
		os.Exit(1)
	}
	defer closeStorage()

	// --- Services ---------------------------------------------------------
	srvHandler := handler.NewServer(
		service.NewTripService(repos.Trips),
		service.NewLocationService(repos.Locations),
		service.NewEventService(repos.Trips, repos.Locations, repos.Events),
		service.NewExportService(repos.Trips),
	)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer → CORS → body limit.
	// SlogLogger sits outside Recoverer so a recovered panic is still logged with its 500.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	// Routes adapts the StrictServerInterface implementation to the generated
	// chi router through gen.NewStrictHandlerWithOptions.
	r.Mount("/", srvHandler.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "storage", cfg.Storage)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// envFile returns the dotenv path, ENV_FILE or ".env".
func envFile() string {
	if p := os.Getenv("ENV_FILE"); p != "" {
		return p
	}
	return ".env"
}

// openStorage builds the repos for the configured backend. The returned
// close function releases whatever the backend holds and is never nil.
func openStorage(ctx context.Context, cfg config.Config) (repo.Repos, func(), error) {
	if cfg.Storage == config.StorageMemory {
		slog.Warn("using in-memory storage; all data is lost on restart")
		return repo.NewMemoryRepos(), func() {}, nil
	}

	// New() does not open connections immediately; the first query does.
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return repo.Repos{}, nil, err
	}

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return repo.Repos{}, nil, err
	}
	slog.Info("database connection established")

	if cfg.MigrateOnStart {
		// goose speaks database/sql; share the pool through the pgx stdlib adapter.
		sqlDB := stdlib.OpenDBFromPool(pool)
		results, err := migrations.Up(ctx, sqlDB)
		sqlDB.Close()
		if err != nil {
			pool.Close()
			return repo.Repos{}, nil, err
		}
		slog.Info("migrations applied", "count", len(results))
	}

	return repo.NewPostgresRepos(pool), pool.Close, nil
}
