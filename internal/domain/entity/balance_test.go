package entity

import (
	"math"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/point-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyBalance(t *testing.T) {
	b := EmptyBalance(42)

	assert.Equal(t, uint64(42), b.UserID)
	assert.Equal(t, int64(0), b.Amount)
	assert.True(t, b.UpdatedAt.IsZero())
	assert.True(t, b.IsEmpty())
}

func TestBalanceCharge(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Charge adds the amount", func(t *testing.T) {
		b := Balance{UserID: 1, Amount: 100}

		next, err := b.Charge(200, now)

		require.NoError(t, err)
		assert.Equal(t, int64(300), next.Amount)
		assert.Equal(t, now, next.UpdatedAt)
		assert.Equal(t, uint64(1), next.UserID)
		assert.Equal(t, int64(100), b.Amount, "receiver must not change")
	})

	t.Run("Non-positive amounts are rejected", func(t *testing.T) {
		for _, amount := range []int64{0, -1, math.MinInt64} {
			b := Balance{UserID: 1, Amount: 100}
			next, err := b.Charge(amount, now)

			assert.ErrorIs(t, err, errs.ErrInvalidAmount)
			assert.Equal(t, b, next)
		}
	})

	t.Run("Reaching the cap exactly is rejected", func(t *testing.T) {
		b := Balance{UserID: 1, Amount: 100}

		_, err := b.Charge(MaxBalance-100, now)

		assert.ErrorIs(t, err, errs.ErrCapExceeded)
	})

	t.Run("One below the cap is accepted", func(t *testing.T) {
		b := Balance{UserID: 1, Amount: 100}

		next, err := b.Charge(MaxBalance-101, now)

		require.NoError(t, err)
		assert.Equal(t, MaxBalance-1, next.Amount)
	})

	t.Run("Huge amounts do not overflow past the cap check", func(t *testing.T) {
		b := Balance{UserID: 1, Amount: 999_999}

		_, err := b.Charge(math.MaxInt64, now)

		assert.ErrorIs(t, err, errs.ErrCapExceeded)
	})

	t.Run("Charging the cap on an empty balance is rejected", func(t *testing.T) {
		_, err := EmptyBalance(4).Charge(1_000_000, now)

		assert.ErrorIs(t, err, errs.ErrCapExceeded)
	})
}

func TestBalanceUse(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Use subtracts the amount", func(t *testing.T) {
		next, err := Balance{UserID: 2, Amount: 300}.Use(30, now)

		require.NoError(t, err)
		assert.Equal(t, int64(270), next.Amount)
		assert.Equal(t, now, next.UpdatedAt)
	})

	t.Run("Using the whole balance leaves zero", func(t *testing.T) {
		next, err := Balance{UserID: 2, Amount: 300}.Use(300, now)

		require.NoError(t, err)
		assert.Equal(t, int64(0), next.Amount)
	})

	t.Run("Using more than the balance is rejected", func(t *testing.T) {
		b := Balance{UserID: 2, Amount: 300}

		next, err := b.Use(1000, now)

		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		assert.Equal(t, b, next)

		var balanceErr *errs.BalanceError
		require.ErrorAs(t, err, &balanceErr)
		assert.Equal(t, int64(300), balanceErr.CurrentBalance)
		assert.Equal(t, int64(1000), balanceErr.Amount)
		assert.Equal(t, OperationUse, balanceErr.Operation)
	})

	t.Run("Non-positive amounts are rejected before the funds check", func(t *testing.T) {
		_, err := EmptyBalance(2).Use(0, now)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestBalanceTimestampNeverMovesBack(t *testing.T) {
	later := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	earlier := later.Add(-time.Minute)

	b := Balance{UserID: 3, Amount: 50, UpdatedAt: later}

	charged, err := b.Charge(10, earlier)
	require.NoError(t, err)
	assert.Equal(t, later, charged.UpdatedAt)

	used, err := charged.Use(10, earlier)
	require.NoError(t, err)
	assert.Equal(t, later, used.UpdatedAt)
}

func TestBalanceApply(t *testing.T) {
	now := time.Now()
	b := Balance{UserID: 5, Amount: 10}

	charged, err := b.Apply(TransactionTypeCharge, 5, now)
	require.NoError(t, err)
	assert.Equal(t, int64(15), charged.Amount)

	used, err := b.Apply(TransactionTypeUse, 5, now)
	require.NoError(t, err)
	assert.Equal(t, int64(5), used.Amount)

	_, err = b.Apply(TransactionType("REFUND"), 5, now)
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)
}
