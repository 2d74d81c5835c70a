package service

import (
	"testing"

	"github.com/soukly/soukly/internal/constants"
	"github.com/soukly/soukly/internal/models"

	"github.com/shopspring/decimal"
)

func lineItem(key, title string, sellerID uint, sellerName, currency string, price int64, qty int) models.CartLineItem {
	return models.CartLineItem{
		ProductKey:     key,
		Title:          title,
		Price:          models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		Currency:       currency,
		SellerID:       sellerID,
		SellerName:     sellerName,
		SellerWhatsApp: "+212600000000",
		Quantity:       qty,
	}
}

func TestGroupBySellerEmptyCartYieldsNoGroups(t *testing.T) {
	groups, err := GroupBySeller(nil)
	if err != nil {
		t.Fatalf("group failed: %v", err)
	}
	if len(groups) != 0 {
		t.Fatalf("want 0 groups got %d", len(groups))
	}
}

func TestGroupBySellerKeyedByIDNotName(t *testing.T) {
	items := []models.CartLineItem{
		lineItem("p1", "Tapis", 1, "Artisanat", constants.CurrencyMAD, 100, 1),
		lineItem("p2", "Poterie", 2, "Artisanat", constants.CurrencyMAD, 50, 1),
	}

	groups, err := GroupBySeller(items)
	if err != nil {
		t.Fatalf("group failed: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("sellers sharing a name must stay distinct, got %d groups", len(groups))
	}
}

func TestGroupBySellerPreservesOrderAndPartitions(t *testing.T) {
	items := []models.CartLineItem{
		lineItem("p1", "Huile d'argan", 1, "Coopérative Tifaout", constants.CurrencyMAD, 120, 2),
		lineItem("p2", "Olives", 2, "Souk Zitoun", constants.CurrencyMAD, 30, 1),
		lineItem("p3", "Savon noir", 1, "Coopérative Tifaout", constants.CurrencyMAD, 40, 1),
	}

	groups, err := GroupBySeller(items)
	if err != nil {
		t.Fatalf("group failed: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("want 2 groups got %d", len(groups))
	}
	if groups[0].SellerID != 1 || groups[1].SellerID != 2 {
		t.Fatalf("groups must follow first appearance order, got %d then %d", groups[0].SellerID, groups[1].SellerID)
	}
	if len(groups[0].Items) != 2 || groups[0].Items[0].ProductKey != "p1" || groups[0].Items[1].ProductKey != "p3" {
		t.Fatalf("items must keep cart order within group: %+v", groups[0].Items)
	}

	seen := map[string]int{}
	for _, group := range groups {
		for _, item := range group.Items {
			seen[item.ProductKey]++
		}
	}
	if len(seen) != 3 || seen["p1"] != 1 || seen["p2"] != 1 || seen["p3"] != 1 {
		t.Fatalf("grouping must partition items exactly once each: %v", seen)
	}

	if groups[0].Total.Plain() != "280" {
		t.Fatalf("first group subtotal want 280 got %s", groups[0].Total.Plain())
	}
}

func TestGroupBySellerRejectsInvalidLineItems(t *testing.T) {
	badQty := []models.CartLineItem{lineItem("p1", "Tapis", 1, "Artisanat", constants.CurrencyMAD, 100, 0)}
	if _, err := GroupBySeller(badQty); err != ErrInvalidLineItem {
		t.Fatalf("zero quantity: want ErrInvalidLineItem got %v", err)
	}

	badPrice := []models.CartLineItem{lineItem("p1", "Tapis", 1, "Artisanat", constants.CurrencyMAD, -10, 1)}
	if _, err := GroupBySeller(badPrice); err != ErrInvalidLineItem {
		t.Fatalf("negative price: want ErrInvalidLineItem got %v", err)
	}
}

func TestGroupBySellerRejectsMixedCurrencyWithinGroup(t *testing.T) {
	items := []models.CartLineItem{
		lineItem("p1", "Tapis", 1, "Artisanat", constants.CurrencyMAD, 100, 1),
		lineItem("p2", "Poterie", 1, "Artisanat", constants.CurrencyEUR, 20, 1),
	}
	if _, err := GroupBySeller(items); err != ErrMixedCurrency {
		t.Fatalf("want ErrMixedCurrency got %v", err)
	}
}
