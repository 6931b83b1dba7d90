package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/point-ledger/internal/domain/entity"
)

// HistoryLog is the append-only record of committed mutations
type HistoryLog interface {
	// Append records one mutation and assigns it the next sequence id.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If a persistent backend cannot be reached
	Append(ctx context.Context, userID uint64, txType entity.TransactionType, amount int64, timestamp time.Time) (entity.HistoryEntry, error)

	// ListByUser returns the user's entries in commit order.
	// A user without history yields an empty slice, not an error.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If a persistent backend cannot be reached
	ListByUser(ctx context.Context, userID uint64) ([]entity.HistoryEntry, error)
}
