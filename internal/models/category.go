package models

import (
	"time"
)

// Category groups listings. SellerID is set on seller-created custom
// categories and nil on the built-in seed set.
type Category struct {
	ID            uint        `gorm:"primarykey" json:"id"`
	Name          string      `gorm:"uniqueIndex;not null" json:"name"`
	Subcategories StringArray `gorm:"type:json" json:"subcategories"`
	SellerID      *uint       `gorm:"index" json:"seller_id,omitempty"`
	SortOrder     int         `gorm:"default:0;index" json:"sort_order"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// TableName sets the table name.
func (Category) TableName() string {
	return "categories"
}
