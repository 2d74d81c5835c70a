package service

import (
	"context"
	"strconv"

	"github.com/soukly/soukly/internal/models"
	"github.com/soukly/soukly/internal/repository"

	"github.com/shopspring/decimal"
)

// CartSummary is the derived view of a cart, recomputed on every read.
type CartSummary struct {
	ItemCount int                     `json:"item_count"`
	Totals    map[string]models.Money `json:"totals"`
}

// CartService manages cart snapshots. Every mutation loads the current
// snapshot, applies the change in memory and writes the whole snapshot
// back.
type CartService struct {
	store       repository.CartStore
	productRepo repository.ProductRepository
}

// NewCartService creates a cart service.
func NewCartService(store repository.CartStore, productRepo repository.ProductRepository) *CartService {
	return &CartService{store: store, productRepo: productRepo}
}

// Items returns the cart contents.
func (s *CartService) Items(ctx context.Context, cartID string) ([]models.CartLineItem, error) {
	return s.store.Load(ctx, cartID)
}

// AddItem puts a product in the cart. Adding a product already present
// increments its quantity instead of creating a second line; the bool
// reports which happened.
func (s *CartService) AddItem(ctx context.Context, cartID string, productID uint, quantity int) ([]models.CartLineItem, bool, error) {
	if quantity < 1 {
		return nil, false, ErrQuantityInvalid
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, false, err
	}
	if product == nil || !product.IsActive || product.Seller == nil {
		return nil, false, ErrProductNotAvailable
	}

	items, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, false, err
	}

	key := strconv.FormatUint(uint64(product.ID), 10)
	incremented := false
	for i := range items {
		if items[i].ProductKey == key {
			items[i].Quantity += quantity
			incremented = true
			break
		}
	}
	if !incremented {
		items = append(items, models.CartLineItem{
			ProductKey:     key,
			Title:          product.Title,
			Price:          product.PriceAmount,
			Currency:       product.PriceCurrency,
			Images:         product.Images,
			SellerID:       product.SellerID,
			SellerName:     product.Seller.Name,
			SellerWhatsApp: product.Seller.WhatsApp,
			Quantity:       quantity,
		})
	}

	if err := s.store.Save(ctx, cartID, items); err != nil {
		return nil, false, err
	}
	return items, incremented, nil
}

// UpdateQuantity sets an item's quantity. Quantities below 1 are
// rejected and leave the cart untouched; an absent item is a no-op.
func (s *CartService) UpdateQuantity(ctx context.Context, cartID, productKey string, quantity int) ([]models.CartLineItem, error) {
	if quantity < 1 {
		return nil, ErrQuantityInvalid
	}
	items, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	changed := false
	for i := range items {
		if items[i].ProductKey == productKey {
			if items[i].Quantity != quantity {
				items[i].Quantity = quantity
				changed = true
			}
			break
		}
	}
	if !changed {
		return items, nil
	}

	if err := s.store.Save(ctx, cartID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// RemoveItem drops an item from the cart. Removing an item that is not
// there is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, cartID, productKey string) ([]models.CartLineItem, error) {
	items, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	kept := items[:0]
	removed := false
	for _, item := range items {
		if item.ProductKey == productKey {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return items, nil
	}

	if err := s.store.Save(ctx, cartID, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context, cartID string) error {
	return s.store.Delete(ctx, cartID)
}

// Summarize derives the item count and per-currency totals.
func Summarize(items []models.CartLineItem) CartSummary {
	summary := CartSummary{Totals: map[string]models.Money{}}
	for _, item := range items {
		summary.ItemCount += item.Quantity
		total := summary.Totals[item.Currency]
		summary.Totals[item.Currency] = models.NewMoneyFromDecimal(total.Decimal.Add(item.LineTotal().Decimal))
	}
	return summary
}

// TotalItemCount sums line quantities.
func TotalItemCount(items []models.CartLineItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// TotalPrice sums line totals for one currency.
func TotalPrice(items []models.CartLineItem, currency string) models.Money {
	total := decimal.Zero
	for _, item := range items {
		if item.Currency == currency {
			total = total.Add(item.LineTotal().Decimal)
		}
	}
	return models.NewMoneyFromDecimal(total)
}
