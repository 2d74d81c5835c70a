package repository

import "github.com/soukly/soukly/internal/models"

// ProductListFilter narrows the product catalog listing.
type ProductListFilter struct {
	Page        int
	PageSize    int
	Search      string
	Category    string
	Subcategory string
	SellerID    uint
	City        string
	MinPrice    *models.Money
	MaxPrice    *models.Money
	OnlyActive  bool
	WithSeller  bool
	OrderBy     string
}

// FavoriteListFilter narrows a user's favorites listing.
type FavoriteListFilter struct {
	Page     int
	PageSize int
	UserID   uint
}
