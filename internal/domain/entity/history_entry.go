package entity

import (
	"fmt"
	"time"
)

// TransactionType is the kind of a committed mutation
type TransactionType string

// Transaction types
const (
	TransactionTypeCharge TransactionType = "CHARGE"
	TransactionTypeUse    TransactionType = "USE"
)

// Operation names used in errors, logs and metrics
const (
	OperationCharge = "charge"
	OperationUse    = "use"
)

// IsValid reports whether t is a known transaction type
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeCharge || t == TransactionTypeUse
}

// Operation returns the lower-case operation name for t
func (t TransactionType) Operation() string {
	if t == TransactionTypeUse {
		return OperationUse
	}
	return OperationCharge
}

// ParseTransactionType converts a stored string back into a TransactionType
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
	return t, nil
}

// HistoryEntry is one committed mutation. Entries are never modified after append.
type HistoryEntry struct {
	SequenceID uint64
	UserID     uint64
	Amount     int64 // delta magnitude, always positive
	Type       TransactionType
	Timestamp  time.Time
}

// SignedAmount returns the delta with its direction applied
func (e HistoryEntry) SignedAmount() int64 {
	if e.Type == TransactionTypeUse {
		return -e.Amount
	}
	return e.Amount
}

// ReplayBalance folds entries into the balance they explain
func ReplayBalance(entries []HistoryEntry) int64 {
	var total int64
	for _, e := range entries {
		total += e.SignedAmount()
	}
	return total
}
