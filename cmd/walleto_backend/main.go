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

	"github.com/SscSPs/walleto/internal/adapters/events"
	portsevents "github.com/SscSPs/walleto/internal/core/ports/events"
	portsrepo "github.com/SscSPs/walleto/internal/core/ports/repositories"
	"github.com/SscSPs/walleto/internal/core/services"
	"github.com/SscSPs/walleto/internal/handlers"
	"github.com/SscSPs/walleto/internal/middleware"
	"github.com/SscSPs/walleto/internal/platform/config"
	"github.com/SscSPs/walleto/internal/repositories/database/pgsql"
	"github.com/SscSPs/walleto/internal/repositories/memory"
	"github.com/SscSPs/walleto/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Walleto API
// @version 1.0
// @description Personal finance backend: bank accounts, their ledgers and categories.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, dispatcher, cleanup, err := setupStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	serviceContainer := services.NewServiceContainer(repos, dispatcher)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage", cfg.Storage))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

// setupStorage builds the repositories for cfg.Storage and the dispatcher services publish through.
// With postgres, events reach the broker through the outbox relay; in memory they are published directly.
func setupStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, portsevents.EventDispatcher, func(), error) {
	logDispatcher := events.NewLogDispatcher(slog.LevelInfo)

	var publisher *events.AMQPPublisher
	if cfg.AMQPURL != "" {
		p, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, nil, err
		}
		publisher = p
		logger.Info("Connected to AMQP broker", slog.String("exchange", cfg.AMQPExchange))
	}
	closePublisher := func() {
		if publisher == nil {
			return
		}
		if err := publisher.Close(); err != nil {
			logger.Error("Error closing AMQP publisher", slog.String("error", err.Error()))
		}
	}

	switch cfg.Storage {
	case config.StorageMemory:
		logger.Warn("Using in-memory storage; data is lost on restart")
		store := memory.NewStore()
		if publisher == nil {
			return memory.NewRepositoryProvider(store), logDispatcher, closePublisher, nil
		}
		return memory.NewRepositoryProvider(store), events.NewMultiDispatcher(logDispatcher, publisher), closePublisher, nil

	default:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			closePublisher()
			return portsrepo.RepositoryProvider{}, nil, nil, err
		}
		logger.Info("Database connection pool established.")

		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			database.ClosePgxPool(dbPool)
			closePublisher()
			return portsrepo.RepositoryProvider{}, nil, nil, err
		}

		if publisher != nil {
			relay := events.NewOutboxRelay(pgsql.NewEventOutbox(dbPool), publisher, logger)
			go relay.Run(ctx)
		} else {
			logger.Warn("AMQP_URL not set; domain events stay in the outbox")
		}

		cleanup := func() {
			closePublisher()
			database.ClosePgxPool(dbPool)
		}
		return pgsql.NewRepositoryProvider(dbPool), logDispatcher, cleanup, nil
	}
}
