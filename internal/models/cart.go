package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLineItem is one product entry in a cart. Line items carry a denormalized
// product snapshot so the cart stays renderable and sendable even while the
// listing changes; ProductKey is the unique key within a cart.
type CartLineItem struct {
	ProductKey     string      `json:"product_key"`
	Title          string      `json:"title"`
	Price          Money       `json:"price"`
	Currency       string      `json:"currency"`
	Images         StringArray `json:"images"`
	SellerID       uint        `json:"seller_id"`
	SellerName     string      `json:"seller_name"`
	SellerWhatsApp string      `json:"seller_whatsapp"`
	Quantity       int         `json:"quantity"`
}

// LineTotal returns price multiplied by quantity.
func (i CartLineItem) LineTotal() Money {
	return NewMoneyFromDecimal(i.Price.Decimal.Mul(decimal.NewFromInt(int64(i.Quantity))))
}

// Cart persists a cart snapshot as one JSON blob per cart ID. The whole item
// list is overwritten on every mutation and the row is deleted when the cart
// empties; this is the database fallback for the Redis snapshot store.
type Cart struct {
	CartID    string    `gorm:"primarykey;type:varchar(64)" json:"cart_id"`
	ItemsJSON []byte    `gorm:"type:json" json:"-"`
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`
}

// TableName sets the table name.
func (Cart) TableName() string {
	return "carts"
}
