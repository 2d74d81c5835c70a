package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a catalog listing.
type Product struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	SellerID      uint           `gorm:"not null;index" json:"seller_id"`
	Slug          string         `gorm:"uniqueIndex;not null" json:"slug"`
	Title         string         `gorm:"not null" json:"title"`
	Description   string         `gorm:"type:text" json:"description"`
	PriceAmount   Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price_amount"`
	PriceCurrency string         `gorm:"type:varchar(8);not null;default:'MAD'" json:"price_currency"`
	Images        StringArray    `gorm:"type:json" json:"images"`
	VideoURL      string         `gorm:"default:''" json:"video_url"`
	Category      string         `gorm:"index;not null" json:"category"`
	Subcategory   string         `gorm:"default:''" json:"subcategory"`
	Location      string         `gorm:"index;default:''" json:"location"`
	IsActive      bool           `gorm:"not null;index" json:"is_active"`
	SortOrder     int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	Seller *Seller `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}
