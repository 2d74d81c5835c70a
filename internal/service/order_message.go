package service

import (
	"fmt"
	"strings"

	"github.com/soukly/soukly/internal/i18n"
	"github.com/soukly/soukly/internal/models"

	"github.com/shopspring/decimal"
)

// FormatOrderMessage renders one seller group as the plain-text order
// message sent over WhatsApp, localized to the given language:
//
//	Nouvelle commande:
//
//	1. Huile d'argan x 2
//	   120 MAD x 2 = 240 MAD
//
//	Total: 240 MAD
//
// Numbering follows item order. Amounts are plain decimals without
// thousands separators so the output stays predictable. The currency on
// the total line comes from the first item. A group with no items still
// formats, yielding the header and a zero total.
func FormatOrderMessage(group SellerGroup, lang string) string {
	lang = i18n.NormalizeLang(lang)

	var b strings.Builder
	b.WriteString(i18n.T(lang, "order.new_order"))
	b.WriteString("\n")

	subtotal := decimal.Zero
	for i, item := range group.Items {
		lineTotal := item.LineTotal()
		subtotal = subtotal.Add(lineTotal.Decimal)
		b.WriteString("\n")
		fmt.Fprintf(&b, "%d. %s x %d\n", i+1, item.Title, item.Quantity)
		fmt.Fprintf(&b, "   %s %s x %d = %s %s\n", item.Price.Plain(), item.Currency, item.Quantity, lineTotal.Plain(), item.Currency)
	}

	b.WriteString("\n")
	b.WriteString(i18n.T(lang, "order.total"))
	b.WriteString(" ")
	b.WriteString(models.NewMoneyFromDecimal(subtotal).Plain())
	if len(group.Items) > 0 {
		b.WriteString(" ")
		b.WriteString(group.Items[0].Currency)
	}
	return b.String()
}
