package seller

import (
	"errors"

	"github.com/soukly/soukly/internal/http/response"
	"github.com/soukly/soukly/internal/service"

	"github.com/gin-gonic/gin"
)

// Become creates the seller profile for the authenticated user.
func (h *Handler) Become(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var input service.SellerProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	seller, err := h.SellerService.Become(uid, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSellerRequired):
			respondError(c, response.CodeBadRequest, "error.seller_required", nil)
		case errors.Is(err, service.ErrSellerExists):
			respondError(c, response.CodeBadRequest, "error.seller_exists", nil)
		case errors.Is(err, service.ErrPhoneInvalid):
			respondError(c, response.CodeBadRequest, "error.phone_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.internal", err)
		}
		return
	}
	response.Success(c, gin.H{"seller": seller})
}

// GetProfile returns the seller profile.
func (h *Handler) GetProfile(c *gin.Context) {
	seller, ok := h.resolveSeller(c)
	if !ok {
		return
	}
	response.Success(c, gin.H{"seller": seller})
}

// UpdateProfile changes the store name, WhatsApp number or city.
func (h *Handler) UpdateProfile(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var input service.SellerProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	seller, err := h.SellerService.UpdateProfile(uid, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSellerRequired):
			respondError(c, response.CodeForbidden, "error.seller_required", nil)
		case errors.Is(err, service.ErrPhoneInvalid):
			respondError(c, response.CodeBadRequest, "error.phone_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.internal", err)
		}
		return
	}
	response.Success(c, gin.H{"seller": seller})
}

// Dashboard returns the seller home summary.
func (h *Handler) Dashboard(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	dashboard, err := h.SellerService.Dashboard(uid)
	if err != nil {
		if errors.Is(err, service.ErrSellerRequired) {
			respondError(c, response.CodeForbidden, "error.seller_required", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, dashboard)
}
