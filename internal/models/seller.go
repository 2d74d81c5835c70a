package models

import (
	"time"

	"gorm.io/gorm"
)

// Seller is the storefront profile of a selling user. The WhatsApp number is
// the contact handle buyers order through.
type Seller struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `gorm:"not null;uniqueIndex" json:"user_id"`
	Name      string         `gorm:"not null" json:"name"`
	WhatsApp  string         `gorm:"not null" json:"whatsapp"`
	City      string         `gorm:"default:''" json:"city"`
	IsActive  bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Seller) TableName() string {
	return "sellers"
}
