// Package model holds the GORM persistence models.
package model

import (
	"time"

	"github.com/lib/pq"
)

// RouteModel mirrors the 'routes' table.
// paths is a text[] of serialized waypoints; detail_paths is a JSON text column.
type RouteModel struct {
	ID            int64          `gorm:"primaryKey;autoIncrement"`
	ThemeID       int            `gorm:"not null;index:idx_routes_theme_time,priority:1"`
	Theme         *ThemeModel    `gorm:"foreignKey:ThemeID"`
	Name          string         `gorm:"type:varchar(255);not null"`
	EstimatedTime int            `gorm:"not null;index:idx_routes_theme_time,priority:2"`
	TotalDistance float64        `gorm:"not null;default:0"`
	ThumbnailURL  string         `gorm:"column:thumbnail;type:text"`
	Paths         pq.StringArray `gorm:"type:text[]"`
	DetailPaths   *string        `gorm:"type:text"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (RouteModel) TableName() string {
	return "routes"
}

// ThemeModel mirrors the 'themes' table.
type ThemeModel struct {
	ID          int    `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ThemeModel) TableName() string {
	return "themes"
}
