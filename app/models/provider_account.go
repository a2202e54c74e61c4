package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PROVIDER_GOOGLE = "google"
	PROVIDER_KAKAO  = "kakao"
)

// ProviderAccount stores external OAuth provider identities linked to a user
type ProviderAccount struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index" json:"user_id"`
	User           User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Provider       string    `gorm:"index:provider_uid,unique;type:varchar(50)" json:"provider"`
	ProviderUserID string    `gorm:"index:provider_uid,unique;type:varchar(191)" json:"provider_user_id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// FindProviderAccount looks up a linked identity by provider + provider user id.
func FindProviderAccount(db *gorm.DB, provider, providerUserID string) (*ProviderAccount, error) {
	var account ProviderAccount
	result := db.Where("provider = ? AND provider_user_id = ?", provider, providerUserID).
		Preload("User").
		First(&account)
	return &account, result.Error
}
