package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/amirhossein-jamali/point-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/point-ledger/internal/domain/port/persistence"
)

// userHistory is one user's append-only list of entries
type userHistory struct {
	mu      sync.RWMutex
	entries []entity.HistoryEntry
}

// HistoryLog keeps the append-only mutation history in process memory.
// Sequence ids come from one global counter; entry lists are per user so
// appends for different users never contend.
type HistoryLog struct {
	sequence atomic.Uint64
	users    sync.Map // map[uint64]*userHistory
}

// NewHistoryLog creates an empty in-memory history log
func NewHistoryLog() *HistoryLog {
	return &HistoryLog{}
}

// Append records one committed mutation and returns it with its sequence id
func (l *HistoryLog) Append(
	_ context.Context,
	userID uint64,
	txType entity.TransactionType,
	amount int64,
	timestamp time.Time,
) (entity.HistoryEntry, error) {
	h := l.historyFor(userID)

	h.mu.Lock()
	defer h.mu.Unlock()

	// The id is taken under the user's lock so per-user order matches id order
	entry := entity.HistoryEntry{
		SequenceID: l.sequence.Add(1),
		UserID:     userID,
		Amount:     amount,
		Type:       txType,
		Timestamp:  timestamp,
	}
	h.entries = append(h.entries, entry)

	return entry, nil
}

// ListByUser returns a copy of the user's entries in append order
func (l *HistoryLog) ListByUser(_ context.Context, userID uint64) ([]entity.HistoryEntry, error) {
	v, ok := l.users.Load(userID)
	if !ok {
		return []entity.HistoryEntry{}, nil
	}
	h := v.(*userHistory)

	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]entity.HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out, nil
}

func (l *HistoryLog) historyFor(userID uint64) *userHistory {
	if v, ok := l.users.Load(userID); ok {
		return v.(*userHistory)
	}
	v, _ := l.users.LoadOrStore(userID, &userHistory{})
	return v.(*userHistory)
}

var _ persistence.HistoryLog = (*HistoryLog)(nil)
