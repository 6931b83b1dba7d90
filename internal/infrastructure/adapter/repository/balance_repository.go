package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/point-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/point-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/point-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ persistence.BalanceStore = (*BalanceRepository)(nil)

// BalanceRepository implements BalanceStore on the user_points table
type BalanceRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewBalanceRepository creates a new BalanceRepository instance
func NewBalanceRepository(db *gorm.DB, logger coreport.Logger) *BalanceRepository {
	return &BalanceRepository{
		db:     db,
		logger: logger,
	}
}

// Get returns the user's balance, or a zero balance when no row exists.
// Inside a unit of work the row is locked until commit.
func (r *BalanceRepository) Get(ctx context.Context, userID uint64) (entity.Balance, error) {
	db := database.DBFromContext(ctx, r.db)
	if database.InTransaction(ctx) {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var row model.UserPoint
	err := db.Where("user_id = ?", userID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.EmptyBalance(userID), nil
	}
	if err != nil {
		r.logger.Error("Database error when reading balance", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return entity.Balance{}, database.MapError(err, "read balance")
	}

	return toBalance(row), nil
}

// Save upserts the balance row
func (r *BalanceRepository) Save(ctx context.Context, balance entity.Balance) (entity.Balance, error) {
	row := model.UserPoint{
		UserID:    balance.UserID,
		Point:     balance.Amount,
		UpdatedAt: balance.UpdatedAt,
	}

	err := database.DBFromContext(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"point", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		r.logger.Error("Database error when saving balance", map[string]any{
			"user_id": balance.UserID,
			"error":   err.Error(),
		})
		return entity.Balance{}, database.MapError(err, "save balance")
	}

	return toBalance(row), nil
}

func toBalance(row model.UserPoint) entity.Balance {
	return entity.Balance{
		UserID:    row.UserID,
		Amount:    row.Point,
		UpdatedAt: row.UpdatedAt,
	}
}
