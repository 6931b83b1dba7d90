package repository

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/point-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/point-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/logger"
)

// sqlRecorder is a GORM logger that keeps every statement it is shown
type sqlRecorder struct {
	mu         sync.Mutex
	statements []string
}

func (r *sqlRecorder) LogMode(gormlogger.LogLevel) gormlogger.Interface { return r }
func (r *sqlRecorder) Info(context.Context, string, ...interface{})     {}
func (r *sqlRecorder) Warn(context.Context, string, ...interface{})     {}
func (r *sqlRecorder) Error(context.Context, string, ...interface{})    {}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statements = append(r.statements, sql)
}

func (r *sqlRecorder) last(t *testing.T) string {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.statements)
	return r.statements[len(r.statements)-1]
}

func newDryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()
	recorder := &sqlRecorder{}
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost port=5432 user=ledger dbname=points sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               recorder,
	})
	require.NoError(t, err)
	return db, recorder
}

func TestBalanceRepository_GetLocksOnlyInsideTransaction(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewBalanceRepository(db, logger.NewNoopLogger())

	_, err := repo.Get(context.Background(), 7)
	require.NoError(t, err)
	sql := recorder.last(t)
	assert.Contains(t, sql, `FROM "user_points"`)
	assert.Contains(t, sql, "user_id = 7")
	assert.NotContains(t, sql, "FOR UPDATE")

	_, err = repo.Get(database.ContextWithTx(context.Background(), db), 7)
	require.NoError(t, err)
	assert.Contains(t, recorder.last(t), "FOR UPDATE")
}

func TestBalanceRepository_SaveUpserts(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewBalanceRepository(db, logger.NewNoopLogger())
	updatedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	saved, err := repo.Save(context.Background(), entity.Balance{UserID: 7, Amount: 300, UpdatedAt: updatedAt})
	require.NoError(t, err)
	assert.Equal(t, entity.Balance{UserID: 7, Amount: 300, UpdatedAt: updatedAt}, saved)

	sql := recorder.last(t)
	assert.Contains(t, sql, `INSERT INTO "user_points"`)
	assert.Contains(t, sql, `ON CONFLICT ("user_id") DO UPDATE SET`)
	assert.Contains(t, sql, `"point"="excluded"."point"`)
}

func TestHistoryRepository_Append(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewHistoryRepository(db, logger.NewNoopLogger())
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	entry, err := repo.Append(context.Background(), 3, entity.TransactionTypeCharge, 100, ts)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), entry.UserID)
	assert.Equal(t, entity.TransactionTypeCharge, entry.Type)
	assert.Equal(t, ts, entry.Timestamp)
	assert.Contains(t, recorder.last(t), `INSERT INTO "point_histories"`)

	_, err = repo.Append(context.Background(), 3, entity.TransactionType("REFUND"), 100, ts)
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)
}

func TestHistoryRepository_ListByUserOrdersByID(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewHistoryRepository(db, logger.NewNoopLogger())

	entries, err := repo.ListByUser(context.Background(), 3)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)

	sql := recorder.last(t)
	assert.Contains(t, sql, `FROM "point_histories"`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(sql), "ORDER BY id ASC"), sql)
}
