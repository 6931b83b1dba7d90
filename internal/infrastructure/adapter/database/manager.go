package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/point-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/point-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Manager manages the postgres connection pool
type Manager struct {
	config       config.DatabaseConfig
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	dial         func(ctx context.Context) (*gorm.DB, error)
}

// NewManager creates a new database manager
func NewManager(cfg config.DatabaseConfig, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	m := &Manager{
		config:       cfg,
		logger:       logger,
		timeProvider: timeProvider,
	}
	m.dial = m.open
	return m
}

// Connect opens the pool, retrying up to RetryAttempts times while the server
// is unreachable. Other failures, such as bad credentials, are returned at once.
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	m.logger.Info("Connecting to database", map[string]any{
		"dsn": m.config.SafeDSN(),
	})

	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var (
		gormDB *gorm.DB
		err    error
	)
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			m.logger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      attempts,
				"delay":   m.config.RetryDelay.String(),
			})
			select {
			case <-time.After(m.config.RetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		gormDB, err = m.dial(ctx)
		if err == nil {
			break
		}

		m.logger.Error("Failed to connect to database", map[string]any{
			"error":   err.Error(),
			"attempt": attempt + 1,
		})
		if !IsConnectionError(err) {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
	}

	m.db = gormDB

	m.logger.Info("Successfully connected to database", map[string]any{
		"host":            m.config.Host,
		"port":            m.config.Port,
		"name":            m.config.Database,
		"max_open_conns":  m.config.MaxOpenConns,
		"max_idle_conns":  m.config.MaxIdleConns,
		"query_timeout_s": m.config.QueryTimeout.Seconds(),
	})

	return m.db, nil
}

func (m *Manager) open(ctx context.Context) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(m.config.DSN()), &gorm.Config{
		Logger: NewGormLogger(m.logger, time.Second),
		NowFunc: func() time.Time {
			return m.timeProvider.Now()
		},
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	pingCtx, cancel := m.WithTimeout(ctx)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return gormDB, nil
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// SQLDB returns the underlying pool, for stats collection
func (m *Manager) SQLDB() (*sql.DB, error) {
	if m.db == nil {
		return nil, fmt.Errorf("database is not connected")
	}
	return m.db.DB()
}

// Ping checks the connection within the query timeout
func (m *Manager) Ping(ctx context.Context) error {
	sqlDB, err := m.SQLDB()
	if err != nil {
		return err
	}
	ctx, cancel := m.WithTimeout(ctx)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// Close closes the database connection
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}
	m.logger.Info("Closing database connection", nil)

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

// WithTimeout returns a context bounded by the configured query timeout
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.config.QueryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, m.config.QueryTimeout)
}

// CreateUnitOfWork creates a UnitOfWork over the connected pool that runs a
// conflicting transaction up to TxRetryAttempts times
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.db, m.logger).WithRetryConfig(RetryConfigFromAttempts(m.config.TxRetryAttempts))
}
