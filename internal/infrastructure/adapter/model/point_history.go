package model

import (
	"time"
)

// PointHistory is one committed charge or use.
// The auto-increment ID doubles as the ledger-wide sequence.
type PointHistory struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement;index:idx_point_histories_user_id_id,priority:2"`
	UserID    uint64    `gorm:"not null;index:idx_point_histories_user_id_id,priority:1"`
	Type      string    `gorm:"not null;size:10;check:chk_point_histories_type,type IN ('CHARGE','USE')"`
	Amount    int64     `gorm:"not null;check:chk_point_histories_amount,amount > 0"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
}

// TableName specifies the table name for PointHistory
func (PointHistory) TableName() string {
	return "point_histories"
}
