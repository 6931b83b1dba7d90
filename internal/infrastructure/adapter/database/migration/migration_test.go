package migration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/model"
	coremocks "github.com/amirhossein-jamali/point-ledger/mocks/port/core"
)

func TestMigrateAll_Postgres(t *testing.T) {
	dsn := os.Getenv("PL_TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("PL_TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrator().DropTable(&model.MigrationVersion{}, &model.PointHistory{}, &model.UserPoint{}))

	appliedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(appliedAt).Once()

	manager := NewMigrationManager(db, logger.NewNoopLogger(), mockTime)
	ctx := context.Background()

	version, err := manager.GetCurrentVersion(ctx)
	require.Error(t, err, "version table does not exist yet")
	assert.Empty(t, version)

	require.NoError(t, manager.MigrateAll(ctx))
	version, err = manager.GetCurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, CurrentSchemaVersion, version)

	// A second run finds the target version and does not record it again
	require.NoError(t, manager.MigrateAll(ctx))
	var count int64
	require.NoError(t, db.Model(&model.MigrationVersion{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	assert.True(t, db.Migrator().HasTable(&model.UserPoint{}))
	assert.True(t, db.Migrator().HasTable(&model.PointHistory{}))
	assert.True(t, db.Migrator().HasIndex(&model.PointHistory{}, "idx_point_histories_user_id_id"))
}
