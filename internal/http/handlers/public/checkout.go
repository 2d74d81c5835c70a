package public

import (
	"github.com/soukly/soukly/internal/http/response"
	"github.com/soukly/soukly/internal/i18n"

	"github.com/gin-gonic/gin"
)

// CheckoutWhatsApp turns the cart into one order per seller: a localized
// message plus a wa.me link the buyer opens to send it. The cart is kept
// so the buyer can still adjust it after previewing the messages.
func (h *Handler) CheckoutWhatsApp(c *gin.Context) {
	cartID, ok := resolveCartID(c)
	if !ok {
		return
	}

	locale := i18n.ResolveLocale(c)
	orders, err := h.OrderService.Place(c.Request.Context(), cartID, locale)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	response.Success(c, gin.H{"orders": orders})
}
