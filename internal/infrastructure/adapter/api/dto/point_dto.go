package dto

import (
	"time"

	"github.com/amirhossein-jamali/point-ledger/internal/domain/entity"
)

// PointRequest is the body of a charge or use request.
// Amount is a pointer so that a missing amount and a zero amount are told apart.
type PointRequest struct {
	Amount *int64 `json:"amount" binding:"required"`
}

// PointResponse represents a user's balance
type PointResponse struct {
	UserID    uint64     `json:"id"`
	Point     int64      `json:"point"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// PointHistoryResponse represents one committed charge or use
type PointHistoryResponse struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"userId"`
	Amount    int64     `json:"amount"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// NewPointResponse maps a balance to its API shape
func NewPointResponse(balance entity.Balance) PointResponse {
	resp := PointResponse{
		UserID: balance.UserID,
		Point:  balance.Amount,
	}
	if !balance.UpdatedAt.IsZero() {
		updatedAt := balance.UpdatedAt.UTC()
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

// NewPointHistoryResponses maps history entries to their API shape, never returning nil
func NewPointHistoryResponses(entries []entity.HistoryEntry) []PointHistoryResponse {
	out := make([]PointHistoryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, PointHistoryResponse{
			ID:        e.SequenceID,
			UserID:    e.UserID,
			Amount:    e.Amount,
			Type:      string(e.Type),
			Timestamp: e.Timestamp.UTC(),
		})
	}
	return out
}
