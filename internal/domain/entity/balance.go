package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/point-ledger/internal/domain/error"
)

// MaxBalance is the exclusive upper bound of a user's balance
const MaxBalance int64 = 1_000_000

// Balance is the point balance of one user at a moment in time.
// It is a value type: mutations return a new Balance and leave the receiver untouched.
type Balance struct {
	UserID    uint64
	Amount    int64
	UpdatedAt time.Time
}

// EmptyBalance returns the balance of a user that has never been mutated
func EmptyBalance(userID uint64) Balance {
	return Balance{UserID: userID}
}

// IsEmpty reports whether the balance has never been mutated
func (b Balance) IsEmpty() bool {
	return b.Amount == 0 && b.UpdatedAt.IsZero()
}

// Charge returns the balance after crediting amount at now.
// The result must stay strictly below MaxBalance.
func (b Balance) Charge(amount int64, now time.Time) (Balance, error) {
	if amount <= 0 {
		return b, errs.NewBalanceError(OperationCharge, b.UserID, amount, b.Amount, errs.ErrInvalidAmount)
	}
	// amount >= MaxBalance-b.Amount is b.Amount+amount >= MaxBalance without the overflow
	if amount >= MaxBalance-b.Amount {
		return b, errs.NewBalanceError(OperationCharge, b.UserID, amount, b.Amount, errs.ErrCapExceeded)
	}

	return Balance{
		UserID:    b.UserID,
		Amount:    b.Amount + amount,
		UpdatedAt: b.nextTimestamp(now),
	}, nil
}

// Use returns the balance after debiting amount at now
func (b Balance) Use(amount int64, now time.Time) (Balance, error) {
	if amount <= 0 {
		return b, errs.NewBalanceError(OperationUse, b.UserID, amount, b.Amount, errs.ErrInvalidAmount)
	}
	if b.Amount < amount {
		return b, errs.NewBalanceError(OperationUse, b.UserID, amount, b.Amount, errs.ErrInsufficientFunds)
	}

	return Balance{
		UserID:    b.UserID,
		Amount:    b.Amount - amount,
		UpdatedAt: b.nextTimestamp(now),
	}, nil
}

// Apply dispatches to Charge or Use according to txType
func (b Balance) Apply(txType TransactionType, amount int64, now time.Time) (Balance, error) {
	switch txType {
	case TransactionTypeCharge:
		return b.Charge(amount, now)
	case TransactionTypeUse:
		return b.Use(amount, now)
	default:
		return b, errs.ErrInvalidRequest
	}
}

// nextTimestamp keeps UpdatedAt non-decreasing when the clock steps backwards
func (b Balance) nextTimestamp(now time.Time) time.Time {
	if now.Before(b.UpdatedAt) {
		return b.UpdatedAt
	}
	return now
}
