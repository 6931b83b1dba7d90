package model

import (
	"time"
)

// UserPoint is the current balance row of one user
type UserPoint struct {
	UserID    uint64    `gorm:"primaryKey;autoIncrement:false"`
	Point     int64     `gorm:"not null;default:0;check:chk_user_points_range,point >= 0 AND point < 1000000"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

// TableName specifies the table name for UserPoint
func (UserPoint) TableName() string {
	return "user_points"
}
