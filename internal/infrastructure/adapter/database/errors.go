package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/point-ledger/internal/domain/error"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes the ledger reacts to
const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
	sqlStateTooManyConnections   = "53300"
	sqlStateAdminShutdown        = "57P01"
	sqlStateCannotConnectNow     = "57P03"
)

// IsRetryableTxError reports whether a failed transaction is known to have left
// no trace, so that running it again cannot apply its writes twice.
// A lost connection is not retryable: the COMMIT may have reached the server.
func IsRetryableTxError(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == sqlStateSerializationFailure || pgErr.Code == sqlStateDeadlockDetected
	}

	return pgconn.SafeToRetry(err)
}

// IsConnectionError reports whether err means the server could not be reached
// or refused the session. Only used while opening the pool.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlStateTooManyConnections, sqlStateAdminShutdown, sqlStateCannotConnectNow:
			return true
		}
		return false
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "server closed") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "i/o timeout")
}

// MapError wraps a driver error into the domain taxonomy.
// Context errors pass through so callers can tell cancellation from failure.
func MapError(err error, operation string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %s: %s", errs.ErrDatabaseConnection, operation, err.Error())
}
