package persistence

import (
	"context"

	"github.com/amirhossein-jamali/point-ledger/internal/domain/entity"
)

// BalanceStore holds the current balance of every user.
// It enforces no business rules; callers validate before saving.
type BalanceStore interface {
	// Get returns the stored balance, or a zero balance when the user has none.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If a persistent backend cannot be reached
	Get(ctx context.Context, userID uint64) (entity.Balance, error)

	// Save overwrites the stored state for balance.UserID and returns it.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If a persistent backend cannot be reached
	Save(ctx context.Context, balance entity.Balance) (entity.Balance, error)
}
