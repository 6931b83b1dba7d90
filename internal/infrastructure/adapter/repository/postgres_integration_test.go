package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/point-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/point-ledger/internal/domain/usecase/point"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/model"
	timeadapter "github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/time"
)

// Set PL_TEST_DATABASE_DSN to a disposable database to run these tests.
func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("PL_TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("PL_TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	log := logger.NewNoopLogger()
	require.NoError(t, migration.NewMigrationManager(db, log, timeadapter.NewRealTimeProvider()).MigrateAll(context.Background()))
	require.NoError(t, db.Exec("TRUNCATE user_points, point_histories RESTART IDENTITY").Error)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newPostgresService(db *gorm.DB) *point.Service {
	log := logger.NewNoopLogger()
	clock := timeadapter.NewRealTimeProvider()
	return point.NewPointService(
		NewBalanceRepository(db, log),
		NewHistoryRepository(db, log),
		database.NewUnitOfWork(db, log),
		point.NewUserLockManager(log, clock, nil),
		clock,
		log,
		nil,
	)
}

func TestPostgres_ConcurrentMutations(t *testing.T) {
	db := openTestDatabase(t)
	svc := newPostgresService(db)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var g errgroup.Group
	for i := 0; i < 50; i++ {
		g.Go(func() error {
			_, err := svc.Charge(ctx, 1, 10)
			return err
		})
	}
	require.NoError(t, g.Wait())

	balance, err := svc.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(500), balance.Amount)

	history, err := svc.GetHistory(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, history, 50)
	assert.Equal(t, int64(500), entity.ReplayBalance(history))
}

func TestPostgres_RejectionWritesNothing(t *testing.T) {
	db := openTestDatabase(t)
	svc := newPostgresService(db)
	ctx := context.Background()

	_, err := svc.Charge(ctx, 2, 100)
	require.NoError(t, err)
	_, err = svc.Use(ctx, 2, 101)
	require.Error(t, err)

	var rows int64
	require.NoError(t, db.Model(&model.PointHistory{}).Where("user_id = ?", 2).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	balance, err := svc.GetBalance(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance.Amount)
}
