package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/point-ledger/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown user reads as zero", func(t *testing.T) {
		store := NewBalanceStore()

		b, err := store.Get(ctx, 99)

		require.NoError(t, err)
		assert.Equal(t, entity.EmptyBalance(99), b)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("Save overwrites and Get returns the stored value", func(t *testing.T) {
		store := NewBalanceStore()
		ts := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

		saved, err := store.Save(ctx, entity.Balance{UserID: 1, Amount: 500, UpdatedAt: ts})
		require.NoError(t, err)
		assert.Equal(t, int64(500), saved.Amount)

		_, err = store.Save(ctx, entity.Balance{UserID: 1, Amount: 200, UpdatedAt: ts.Add(time.Second)})
		require.NoError(t, err)

		got, err := store.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(200), got.Amount)
		assert.Equal(t, ts.Add(time.Second), got.UpdatedAt)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("Readers only see whole values", func(t *testing.T) {
		store := NewBalanceStore()
		const writes = 2000

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := int64(1); i <= writes; i++ {
				// amount and timestamp always move together
				_, _ = store.Save(ctx, entity.Balance{UserID: 7, Amount: i, UpdatedAt: time.Unix(i, 0)})
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < writes; i++ {
				b, _ := store.Get(ctx, 7)
				if b.Amount != 0 {
					assert.Equal(t, b.Amount, b.UpdatedAt.Unix())
				}
			}
		}()
		wg.Wait()
	})
}

func TestHistoryLog(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Unknown user has an empty, non-nil history", func(t *testing.T) {
		log := NewHistoryLog()

		entries, err := log.ListByUser(ctx, 3)

		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("Entries keep append order with increasing sequence ids", func(t *testing.T) {
		log := NewHistoryLog()

		first, err := log.Append(ctx, 1, entity.TransactionTypeCharge, 100, ts)
		require.NoError(t, err)
		_, err = log.Append(ctx, 2, entity.TransactionTypeCharge, 5, ts)
		require.NoError(t, err)
		second, err := log.Append(ctx, 1, entity.TransactionTypeUse, 30, ts.Add(time.Second))
		require.NoError(t, err)

		assert.Less(t, first.SequenceID, second.SequenceID)

		entries, err := log.ListByUser(ctx, 1)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, entity.TransactionTypeCharge, entries[0].Type)
		assert.Equal(t, int64(100), entries[0].Amount)
		assert.Equal(t, entity.TransactionTypeUse, entries[1].Type)
		assert.Equal(t, int64(30), entries[1].Amount)
		assert.Equal(t, ts.Add(time.Second), entries[1].Timestamp)
	})

	t.Run("Returned slices are copies", func(t *testing.T) {
		log := NewHistoryLog()
		_, err := log.Append(ctx, 1, entity.TransactionTypeCharge, 100, ts)
		require.NoError(t, err)

		entries, err := log.ListByUser(ctx, 1)
		require.NoError(t, err)
		entries[0].Amount = 1

		again, err := log.ListByUser(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(100), again[0].Amount)
	})

	t.Run("Concurrent appends assign unique ids", func(t *testing.T) {
		log := NewHistoryLog()
		const perUser = 200

		var wg sync.WaitGroup
		for user := uint64(1); user <= 4; user++ {
			wg.Add(1)
			go func(userID uint64) {
				defer wg.Done()
				for i := 0; i < perUser; i++ {
					_, _ = log.Append(ctx, userID, entity.TransactionTypeCharge, 1, ts)
				}
			}(user)
		}
		wg.Wait()

		seen := make(map[uint64]bool)
		for user := uint64(1); user <= 4; user++ {
			entries, err := log.ListByUser(ctx, user)
			require.NoError(t, err)
			require.Len(t, entries, perUser)
			for i, e := range entries {
				assert.False(t, seen[e.SequenceID], "duplicate sequence id %d", e.SequenceID)
				seen[e.SequenceID] = true
				if i > 0 {
					assert.Less(t, entries[i-1].SequenceID, e.SequenceID)
				}
			}
		}
	})
}

func TestUnitOfWorkRunsWork(t *testing.T) {
	called := false
	err := NewUnitOfWork().Execute(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}
