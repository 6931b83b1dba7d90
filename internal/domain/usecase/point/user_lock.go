package point

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	errs "github.com/amirhossein-jamali/point-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/point-ledger/internal/domain/port/core"
)

// userSlot is a one-token semaphore guarding one user's critical section.
// Sending acquires, receiving releases.
type userSlot chan struct{}

// UserLockManager serializes critical sections per user ID.
// Sections for the same user run one at a time. Waiters are admitted in turn
// with no ordering among them, and a new caller may take a free slot ahead of
// them. Sections for different users never wait on each other.
// Slots are created on first use and kept for the life of the process.
type UserLockManager struct {
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	metrics      coreport.LedgerMetrics
	lockTimeout  time.Duration

	slots     sync.Map // map[uint64]userSlot
	slotCount atomic.Int64
}

// NewUserLockManager creates a lock manager without an acquisition timeout
func NewUserLockManager(
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	metrics coreport.LedgerMetrics,
) *UserLockManager {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &UserLockManager{
		logger:       logger,
		timeProvider: timeProvider,
		metrics:      metrics,
	}
}

// WithLockTimeout bounds how long a caller waits for a busy user.
// Zero means wait until the caller's context ends.
func (m *UserLockManager) WithLockTimeout(timeout time.Duration) *UserLockManager {
	if timeout < 0 {
		timeout = 0
	}
	m.lockTimeout = timeout
	return m
}

// LockTimeout returns the configured acquisition timeout
func (m *UserLockManager) LockTimeout() time.Duration {
	return m.lockTimeout
}

// ActiveSlots returns how many users have a slot
func (m *UserLockManager) ActiveSlots() int {
	return int(m.slotCount.Load())
}

// WithUserLock runs fn while holding userID's slot and returns fn's error.
// fn runs at most once. The slot is released on every exit path, panics included.
// If the slot cannot be acquired, fn does not run and the error is ctx.Err()
// or ErrUserLocked when the lock timeout elapsed.
func (m *UserLockManager) WithUserLock(ctx context.Context, userID uint64, fn func(ctx context.Context) error) error {
	release, err := m.acquire(ctx, userID)
	if err != nil {
		return err
	}
	defer release()

	return fn(ctx)
}

// WithUserLock is WithUserLock for critical sections that produce a value
func WithUserLock[T any](
	ctx context.Context,
	locks *UserLockManager,
	userID uint64,
	fn func(ctx context.Context) (T, error),
) (T, error) {
	var result T
	err := locks.WithUserLock(ctx, userID, func(ctx context.Context) error {
		var err error
		result, err = fn(ctx)
		return err
	})
	return result, err
}

func (m *UserLockManager) acquire(ctx context.Context, userID uint64) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slot := m.slotFor(userID)
	release := func() { <-slot }

	// Uncontended
	select {
	case slot <- struct{}{}:
		m.metrics.ObserveLockWait(0)
		return release, nil
	default:
	}

	start := m.timeProvider.Now()
	m.logger.Debug("Waiting for user slot", map[string]any{
		"user_id": userID,
	})

	var timeout <-chan time.Time
	if m.lockTimeout > 0 {
		timer := time.NewTimer(m.lockTimeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case slot <- struct{}{}:
		m.metrics.ObserveLockWait(m.timeProvider.Since(start))
		return release, nil
	case <-ctx.Done():
		m.logger.Warn("Context ended while waiting for user slot", map[string]any{
			"user_id": userID,
			"error":   ctx.Err().Error(),
		})
		return nil, ctx.Err()
	case <-timeout:
		m.logger.Warn("Timed out waiting for user slot", map[string]any{
			"user_id":    userID,
			"timeout_ms": m.lockTimeout.Milliseconds(),
		})
		return nil, fmt.Errorf("user %d busy for %s: %w", userID, m.lockTimeout, errs.ErrUserLocked)
	}
}

func (m *UserLockManager) slotFor(userID uint64) userSlot {
	if v, ok := m.slots.Load(userID); ok {
		return v.(userSlot)
	}

	v, loaded := m.slots.LoadOrStore(userID, make(userSlot, 1))
	if !loaded {
		count := m.slotCount.Add(1)
		m.metrics.SetActiveUserSlots(int(count))
		m.logger.Debug("Created slot for user", map[string]any{
			"user_id": userID,
		})
	}
	return v.(userSlot)
}
