package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/point-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/point-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/point-ledger/internal/domain/usecase/point"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/memory"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/config"
)

// storage bundles the backend chosen by storage.driver
type storage struct {
	balances persistence.BalanceStore
	history  persistence.HistoryLog
	uow      persistence.UnitOfWork
	close    func() error
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("point-ledger: %v", err)
	}
}

// run wires the application and serves until SIGINT or SIGTERM.
// Deferred cleanup runs on every return path.
func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger, err := logger.NewZapLoggerWithFormat(
		cfg.IsProduction(),
		coreport.ParseLogLevel(cfg.Logger.Level),
		cfg.Logger.Format,
	)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	// Metrics are optional; ledgerMetrics stays nil when disabled
	var (
		promMetrics   *metrics.PrometheusMetrics
		ledgerMetrics coreport.LedgerMetrics
		observer      middleware.RequestObserver
	)
	if cfg.Metrics.Enabled {
		promMetrics, err = metrics.NewPrometheusMetrics()
		if err != nil {
			appLogger.Error("Failed to create metrics", map[string]any{"error": err.Error()})
			return fmt.Errorf("failed to create metrics: %w", err)
		}
		ledgerMetrics = promMetrics
		observer = promMetrics
	}

	store, err := openStorage(context.Background(), cfg, appLogger, tp, promMetrics)
	if err != nil {
		appLogger.Error("Failed to open storage", map[string]any{
			"driver": cfg.Storage.Driver,
			"error":  err.Error(),
		})
		return fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Driver, err)
	}
	defer func() {
		if err := store.close(); err != nil {
			appLogger.Error("Failed to close storage", map[string]any{"error": err.Error()})
		}
	}()

	// Initialize use case
	locks := point.NewUserLockManager(appLogger, tp, ledgerMetrics).
		WithLockTimeout(cfg.Ledger.LockTimeout())
	pointService := point.NewPointService(
		store.balances,
		store.history,
		store.uow,
		locks,
		tp,
		appLogger,
		ledgerMetrics,
	)

	// Initialize API
	pointHandler := handler.NewPointHandler(pointService, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, observer, cfg.Ledger.RequestTimeout())
	routes.SetupRoutes(router, pointHandler)
	if promMetrics != nil {
		routes.SetupMetricsRoute(router, promMetrics.Handler())
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine; a listen failure ends run like a signal would
	serveErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":         server.Addr,
			"env":          cfg.Environment,
			"storage":      cfg.Storage.Driver,
			"lock_timeout": locks.LockTimeout().String(),
			"metrics":      cfg.Metrics.Enabled,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		appLogger.Error("Failed to start server", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// In-flight mutations finish before storage is closed by the deferred call
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}

// openStorage builds the balance store, history log and unit of work for cfg.Storage.Driver
func openStorage(
	ctx context.Context,
	cfg *config.Config,
	appLogger coreport.Logger,
	tp coreport.TimeProvider,
	promMetrics *metrics.PrometheusMetrics,
) (*storage, error) {
	switch strings.ToLower(cfg.Storage.Driver) {
	case config.StorageMemory:
		appLogger.Info("Using in-memory storage", nil)
		return &storage{
			balances: memory.NewBalanceStore(),
			history:  memory.NewHistoryLog(),
			uow:      memory.NewUnitOfWork(),
			close:    func() error { return nil },
		}, nil

	case config.StoragePostgres:
		dbManager := database.NewManager(cfg.Database, appLogger, tp)
		db, err := dbManager.Connect(ctx)
		if err != nil {
			return nil, err
		}

		if cfg.Database.AutoMigrate {
			if err := migration.NewMigrationManager(db, appLogger, tp).MigrateAll(ctx); err != nil {
				_ = dbManager.Close()
				return nil, fmt.Errorf("failed to run migrations: %w", err)
			}
		}

		if promMetrics != nil {
			sqlDB, err := dbManager.SQLDB()
			if err == nil {
				err = promMetrics.RegisterDBStats(sqlDB, cfg.Database.Database)
			}
			if err != nil {
				appLogger.Warn("Database pool metrics unavailable", map[string]any{"error": err.Error()})
			}
		}

		return &storage{
			balances: repository.NewBalanceRepository(db, appLogger),
			history:  repository.NewHistoryRepository(db, appLogger),
			uow:      dbManager.CreateUnitOfWork(),
			close:    dbManager.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
