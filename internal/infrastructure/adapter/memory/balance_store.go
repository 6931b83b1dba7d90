package memory

import (
	"context"
	"sync"

	"github.com/amirhossein-jamali/point-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/point-ledger/internal/domain/port/persistence"
)

// BalanceStore keeps every user's balance in process memory.
// Each user's entry is an immutable entity.Balance swapped in whole by Save,
// so Get never observes a half-written value and never takes a lock.
type BalanceStore struct {
	balances sync.Map // map[uint64]entity.Balance
}

// NewBalanceStore creates an empty in-memory balance store
func NewBalanceStore() *BalanceStore {
	return &BalanceStore{}
}

// Get returns the stored balance or a zero balance for unknown users
func (s *BalanceStore) Get(_ context.Context, userID uint64) (entity.Balance, error) {
	if v, ok := s.balances.Load(userID); ok {
		return v.(entity.Balance), nil
	}
	return entity.EmptyBalance(userID), nil
}

// Save replaces the stored balance of balance.UserID
func (s *BalanceStore) Save(_ context.Context, balance entity.Balance) (entity.Balance, error) {
	s.balances.Store(balance.UserID, balance)
	return balance, nil
}

// Len returns the number of users with a stored balance
func (s *BalanceStore) Len() int {
	n := 0
	s.balances.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

var _ persistence.BalanceStore = (*BalanceStore)(nil)
