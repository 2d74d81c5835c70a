package service

import (
	"github.com/soukly/soukly/internal/models"

	"github.com/shopspring/decimal"
)

// SellerGroup is one seller's slice of a cart, with its own total. An
// order is placed per group, one WhatsApp conversation per seller.
type SellerGroup struct {
	SellerID       uint                  `json:"seller_id"`
	SellerName     string                `json:"seller_name"`
	SellerWhatsApp string                `json:"seller_whatsapp"`
	Currency       string                `json:"currency"`
	Items          []models.CartLineItem `json:"items"`
	Total          models.Money          `json:"total"`
}

// GroupBySeller partitions cart items by seller. Groups appear in the
// order their seller first appears in the cart, and items keep their
// cart order within a group. The whole call fails on the first invalid
// line item, and on any group mixing currencies.
func GroupBySeller(items []models.CartLineItem) ([]SellerGroup, error) {
	groups := make([]SellerGroup, 0)
	index := make(map[uint]int)

	for _, item := range items {
		if item.Quantity < 1 || item.Price.IsNegative() {
			return nil, ErrInvalidLineItem
		}

		pos, ok := index[item.SellerID]
		if !ok {
			pos = len(groups)
			index[item.SellerID] = pos
			groups = append(groups, SellerGroup{
				SellerID:       item.SellerID,
				SellerName:     item.SellerName,
				SellerWhatsApp: item.SellerWhatsApp,
				Currency:       item.Currency,
			})
		} else if groups[pos].Currency != item.Currency {
			return nil, ErrMixedCurrency
		}

		groups[pos].Items = append(groups[pos].Items, item)
	}

	for i := range groups {
		total := decimal.Zero
		for _, item := range groups[i].Items {
			total = total.Add(item.LineTotal().Decimal)
		}
		groups[i].Total = models.NewMoneyFromDecimal(total)
	}

	return groups, nil
}
