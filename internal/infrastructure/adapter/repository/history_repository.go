package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/point-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/point-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/point-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/point-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

var _ persistence.HistoryLog = (*HistoryRepository)(nil)

// HistoryRepository implements HistoryLog on the point_histories table
type HistoryRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewHistoryRepository creates a new HistoryRepository instance
func NewHistoryRepository(db *gorm.DB, logger coreport.Logger) *HistoryRepository {
	return &HistoryRepository{
		db:     db,
		logger: logger,
	}
}

// Append inserts one history row; its generated ID is the sequence ID
func (r *HistoryRepository) Append(
	ctx context.Context,
	userID uint64,
	txType entity.TransactionType,
	amount int64,
	timestamp time.Time,
) (entity.HistoryEntry, error) {
	if !txType.IsValid() {
		return entity.HistoryEntry{}, fmt.Errorf("%w: unknown transaction type %q", errs.ErrInvalidRequest, txType)
	}

	row := model.PointHistory{
		UserID:    userID,
		Type:      string(txType),
		Amount:    amount,
		CreatedAt: timestamp,
	}
	if err := database.DBFromContext(ctx, r.db).Create(&row).Error; err != nil {
		r.logger.Error("Database error when appending history", map[string]any{
			"user_id": userID,
			"type":    string(txType),
			"error":   err.Error(),
		})
		return entity.HistoryEntry{}, database.MapError(err, "append history")
	}

	return entity.HistoryEntry{
		SequenceID: row.ID,
		UserID:     row.UserID,
		Amount:     row.Amount,
		Type:       txType,
		Timestamp:  row.CreatedAt,
	}, nil
}

// ListByUser returns the user's rows in insertion order
func (r *HistoryRepository) ListByUser(ctx context.Context, userID uint64) ([]entity.HistoryEntry, error) {
	var rows []model.PointHistory
	err := database.DBFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		r.logger.Error("Database error when listing history", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, database.MapError(err, "list history")
	}

	entries := make([]entity.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		entry, err := toHistoryEntry(row)
		if err != nil {
			return nil, fmt.Errorf("%w: history row %d: %s", errs.ErrInternalServer, row.ID, err.Error())
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func toHistoryEntry(row model.PointHistory) (entity.HistoryEntry, error) {
	txType, err := entity.ParseTransactionType(row.Type)
	if err != nil {
		return entity.HistoryEntry{}, err
	}
	return entity.HistoryEntry{
		SequenceID: row.ID,
		UserID:     row.UserID,
		Amount:     row.Amount,
		Type:       txType,
		Timestamp:  row.CreatedAt,
	}, nil
}
