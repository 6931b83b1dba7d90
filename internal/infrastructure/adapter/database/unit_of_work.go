package database

import (
	"context"
	"database/sql"

	coreport "github.com/amirhossein-jamali/point-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/point-ledger/internal/domain/port/persistence"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)

// UnitOfWork runs work inside one database transaction.
// Repositories find the transaction through DBFromContext.
type UnitOfWork struct {
	db          *gorm.DB
	logger      coreport.Logger
	retryConfig RetryConfig
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger) *UnitOfWork {
	return &UnitOfWork{
		db:          db,
		logger:      logger,
		retryConfig: DefaultRetryConfig(),
	}
}

// WithRetryConfig replaces the retry policy for serialization failures and deadlocks
func (u *UnitOfWork) WithRetryConfig(cfg RetryConfig) *UnitOfWork {
	u.retryConfig = cfg
	return u
}

// Execute runs fn in a READ COMMITTED transaction, committing when fn returns nil.
// A transaction that fails with a deadlock or serialization error is rolled back
// and fn runs again; any other error, a dropped connection included, is returned
// after rollback without running fn again.
// A nested call joins the enclosing transaction.
func (u *UnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return fn(ctx)
	}

	return RetryOnConflict(ctx, u.retryConfig, u.logger, func() error {
		err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(ContextWithTx(ctx, tx))
		}, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
		if err != nil {
			u.logger.Debug("Database transaction rolled back", map[string]any{
				"error": err.Error(),
			})
		}
		return err
	})
}

// ContextWithTx stores tx so that repositories called with the returned context use it
func ContextWithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// DBFromContext returns the transaction stored by Execute, or fallback bound to ctx
func DBFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return fallback.WithContext(ctx)
}

// InTransaction reports whether ctx carries a transaction started by Execute
func InTransaction(ctx context.Context) bool {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	return ok && tx != nil
}
