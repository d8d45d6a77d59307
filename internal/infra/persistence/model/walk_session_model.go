package model

import (
	"time"

	"github.com/google/uuid"
)

// WalkSessionModel mirrors the 'sessions' table. An open session has a NULL end_time,
// and the partial unique index allows at most one open session per user.
type WalkSessionModel struct {
	ID             int64       `gorm:"primaryKey;autoIncrement"`
	UserID         uuid.UUID   `gorm:"type:uuid;not null;index;uniqueIndex:idx_sessions_open_user,where:end_time IS NULL"`
	RouteID        int64       `gorm:"not null"`
	Route          *RouteModel `gorm:"foreignKey:RouteID"`
	StartTime      time.Time   `gorm:"not null"`
	EndTime        *time.Time
	ActualDistance float64 `gorm:"not null;default:0"`
	ActualDuration int     `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (WalkSessionModel) TableName() string {
	return "sessions"
}
