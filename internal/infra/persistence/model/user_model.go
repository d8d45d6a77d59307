package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username  string    `gorm:"type:varchar(100);not null;index"`
	Email     string    `gorm:"type:varchar(255)"`
	AvatarURL string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time

	SocialAccounts []SocialAccountModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// SocialAccountModel mirrors the 'social_users' table. provider_id is unique per provider.
type SocialAccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ProviderName string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_social_users_provider"`
	ProviderID   string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_social_users_provider"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SocialAccountModel) TableName() string {
	return "social_users"
}
