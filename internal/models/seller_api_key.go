package models

import (
	"time"

	"gorm.io/gorm"
)

// SellerAPIKey is an opaque key for the seller machine API. Only the SHA-256
// hash of the secret is stored; Prefix keeps the first characters around so
// the dashboard can label keys.
type SellerAPIKey struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	SellerID   uint           `gorm:"not null;index" json:"seller_id"`
	Name       string         `gorm:"default:''" json:"name"`
	KeyHash    string         `gorm:"uniqueIndex;not null" json:"-"`
	Prefix     string         `gorm:"not null" json:"prefix"`
	LastUsedAt *time.Time     `json:"last_used_at"`
	RevokedAt  *time.Time     `gorm:"index" json:"revoked_at"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (SellerAPIKey) TableName() string {
	return "seller_api_keys"
}
