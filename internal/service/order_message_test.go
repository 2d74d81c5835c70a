package service

import (
	"strings"
	"testing"

	"github.com/soukly/soukly/internal/constants"
	"github.com/soukly/soukly/internal/models"

	"github.com/shopspring/decimal"
)

func TestFormatOrderMessageSingleItem(t *testing.T) {
	group := SellerGroup{
		SellerID:   1,
		SellerName: "Coopérative Tifaout",
		Currency:   constants.CurrencyMAD,
		Items: []models.CartLineItem{
			lineItem("p1", "Huile d'argan", 1, "Coopérative Tifaout", constants.CurrencyMAD, 120, 2),
		},
	}

	msg := FormatOrderMessage(group, constants.LangEN)
	if !strings.HasPrefix(msg, "New order:") {
		t.Fatalf("missing header: %q", msg)
	}
	if !strings.Contains(msg, "1. Huile d'argan x 2") {
		t.Fatalf("missing numbered line: %q", msg)
	}
	if !strings.Contains(msg, "120 MAD x 2 = 240 MAD") {
		t.Fatalf("missing line total: %q", msg)
	}
	if !strings.Contains(msg, "Total: 240 MAD") {
		t.Fatalf("missing total line: %q", msg)
	}
}

func TestFormatOrderMessageLocalizedHeaders(t *testing.T) {
	group := SellerGroup{
		Items: []models.CartLineItem{
			lineItem("p1", "Tapis", 1, "Artisanat", constants.CurrencyMAD, 890, 1),
		},
	}

	fr := FormatOrderMessage(group, constants.LangFR)
	if !strings.HasPrefix(fr, "Nouvelle commande:") || !strings.Contains(fr, "Total: 890 MAD") {
		t.Fatalf("french message wrong: %q", fr)
	}

	ar := FormatOrderMessage(group, constants.LangAR)
	if !strings.HasPrefix(ar, "طلب جديد:") || !strings.Contains(ar, "المجموع: 890 MAD") {
		t.Fatalf("arabic message wrong: %q", ar)
	}
}

func TestFormatOrderMessageNumbersFollowItemOrder(t *testing.T) {
	group := SellerGroup{
		Items: []models.CartLineItem{
			lineItem("p1", "Babouches", 1, "Artisanat", constants.CurrencyMAD, 249, 1),
			lineItem("p2", "Caftan", 1, "Artisanat", constants.CurrencyMAD, 890, 1),
		},
	}

	msg := FormatOrderMessage(group, constants.LangEN)
	first := strings.Index(msg, "1. Babouches x 1")
	second := strings.Index(msg, "2. Caftan x 1")
	if first < 0 || second < 0 || second < first {
		t.Fatalf("item numbering wrong: %q", msg)
	}
	if !strings.Contains(msg, "Total: 1139 MAD") {
		t.Fatalf("total wrong: %q", msg)
	}
}

func TestFormatOrderMessageEmptyGroupStillFormats(t *testing.T) {
	msg := FormatOrderMessage(SellerGroup{}, constants.LangEN)
	if !strings.HasPrefix(msg, "New order:") {
		t.Fatalf("missing header: %q", msg)
	}
	if !strings.Contains(msg, "Total: 0") {
		t.Fatalf("missing zero total: %q", msg)
	}
}

func TestFormatOrderMessageFractionalPricesKeepDecimals(t *testing.T) {
	group := SellerGroup{
		Items: []models.CartLineItem{
			{
				ProductKey: "p1",
				Title:      "Safran 1g",
				Price:      models.NewMoneyFromDecimal(decimal.RequireFromString("32.50")),
				Currency:   constants.CurrencyMAD,
				SellerID:   1,
				Quantity:   3,
			},
		},
	}

	msg := FormatOrderMessage(group, constants.LangEN)
	if !strings.Contains(msg, "32.5 MAD x 3 = 97.5 MAD") {
		t.Fatalf("fractional amounts wrong: %q", msg)
	}
}
