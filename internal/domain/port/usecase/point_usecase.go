package usecase

import (
	"context"

	"github.com/amirhossein-jamali/point-ledger/internal/domain/entity"
)

// PointUseCase is the ledger surface consumed by the request layer
type PointUseCase interface {
	// Charge credits amount to the user's balance and returns the new balance.
	//
	// Possible errors:
	// - ErrInvalidUserID: If userID is zero
	// - ErrInvalidAmount: If amount is not positive
	// - ErrCapExceeded: If the resulting balance would reach the cap
	Charge(ctx context.Context, userID uint64, amount int64) (entity.Balance, error)

	// Use debits amount from the user's balance and returns the new balance.
	//
	// Possible errors:
	// - ErrInvalidUserID: If userID is zero
	// - ErrInvalidAmount: If amount is not positive
	// - ErrInsufficientFunds: If amount is larger than the balance
	Use(ctx context.Context, userID uint64, amount int64) (entity.Balance, error)

	// GetBalance returns the current balance; unknown users read as zero
	GetBalance(ctx context.Context, userID uint64) (entity.Balance, error)

	// GetHistory returns every committed mutation of the user in order
	GetHistory(ctx context.Context, userID uint64) ([]entity.HistoryEntry, error)
}
