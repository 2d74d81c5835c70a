package public

import (
	"strconv"
	"strings"

	"github.com/soukly/soukly/internal/constants"
	"github.com/soukly/soukly/internal/http/response"
	"github.com/soukly/soukly/internal/models"
	"github.com/soukly/soukly/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AddCartItemRequest is the add-to-cart request body.
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// UpdateCartItemRequest overrides one line quantity.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// CartLineView is one cart line with its derived total.
type CartLineView struct {
	models.CartLineItem
	LineTotal models.Money `json:"line_total"`
}

// resolveCartID picks the cart identity: the authenticated user, else an
// anonymous uuid round-tripped through the X-Cart-ID header. Anonymous
// responses always echo the header so the client can keep its cart.
func resolveCartID(c *gin.Context) (string, bool) {
	if uid, ok := currentUserID(c); ok {
		return "user:" + strconv.FormatUint(uint64(uid), 10), true
	}

	id := strings.TrimSpace(c.GetHeader(constants.CartIDHeader))
	if id != "" {
		if _, err := uuid.Parse(id); err != nil {
			respondError(c, response.CodeBadRequest, "error.cart_id_invalid", nil)
			return "", false
		}
	} else {
		id = uuid.NewString()
	}
	c.Header(constants.CartIDHeader, id)
	return "anon:" + id, true
}

func buildCartPayload(items []models.CartLineItem) (gin.H, error) {
	groups, err := service.GroupBySeller(items)
	if err != nil {
		return nil, err
	}

	lines := make([]CartLineView, 0, len(items))
	for _, item := range items {
		lines = append(lines, CartLineView{CartLineItem: item, LineTotal: item.LineTotal()})
	}

	summary := service.Summarize(items)
	return gin.H{
		"items":      lines,
		"groups":     groups,
		"item_count": summary.ItemCount,
		"totals":     summary.Totals,
	}, nil
}

// GetCart returns the cart lines, the per-seller groups and the totals.
func (h *Handler) GetCart(c *gin.Context) {
	cartID, ok := resolveCartID(c)
	if !ok {
		return
	}

	items, err := h.CartService.Items(c.Request.Context(), cartID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.cart_fetch_failed", err)
		return
	}

	payload, err := buildCartPayload(items)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, payload)
}

// AddCartItem puts a product into the cart, incrementing an existing line.
func (h *Handler) AddCartItem(c *gin.Context) {
	cartID, ok := resolveCartID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	items, incremented, err := h.CartService.AddItem(c.Request.Context(), cartID, req.ProductID, req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}

	payload, err := buildCartPayload(items)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	msgKey := "cart.item_added"
	if incremented {
		msgKey = "cart.quantity_added"
	}
	response.SuccessWithMsg(c, localizedMsg(c, msgKey), payload)
}

// UpdateCartItemQuantity overwrites the quantity of one cart line.
func (h *Handler) UpdateCartItemQuantity(c *gin.Context) {
	cartID, ok := resolveCartID(c)
	if !ok {
		return
	}
	productKey := c.Param("product_key")
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	items, err := h.CartService.UpdateQuantity(c.Request.Context(), cartID, productKey, req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}

	payload, err := buildCartPayload(items)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, payload)
}

// RemoveCartItem drops one line from the cart.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	cartID, ok := resolveCartID(c)
	if !ok {
		return
	}

	items, err := h.CartService.RemoveItem(c.Request.Context(), cartID, c.Param("product_key"))
	if err != nil {
		respondCartError(c, err)
		return
	}

	payload, err := buildCartPayload(items)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.SuccessWithMsg(c, localizedMsg(c, "cart.item_removed"), payload)
}

// ClearCart empties the cart.
func (h *Handler) ClearCart(c *gin.Context) {
	cartID, ok := resolveCartID(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(c.Request.Context(), cartID); err != nil {
		respondError(c, response.CodeInternal, "error.cart_update_failed", err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}
