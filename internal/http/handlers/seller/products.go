package seller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/soukly/soukly/internal/http/response"
	"github.com/soukly/soukly/internal/service"

	handlershared "github.com/soukly/soukly/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return 0, false
	}
	return uint(id), true
}

func parseQueryInt(c *gin.Context, key string, fallback int) int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func respondProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "error.not_found", nil)
	case errors.Is(err, service.ErrForbidden):
		respondError(c, response.CodeForbidden, "error.forbidden", nil)
	case errors.Is(err, service.ErrProductSlugExists):
		respondError(c, response.CodeBadRequest, "error.slug_exists", nil)
	case errors.Is(err, service.ErrInvalidLineItem):
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
	default:
		respondError(c, response.CodeInternal, "error.internal", err)
	}
}

// ListProducts returns the seller's own listings, inactive ones included.
func (h *Handler) ListProducts(c *gin.Context) {
	seller, ok := h.resolveSeller(c)
	if !ok {
		return
	}
	page, pageSize := handlershared.NormalizePagination(
		parseQueryInt(c, "page", 1),
		parseQueryInt(c, "page_size", 20),
	)

	products, total, err := h.ProductService.ListForSeller(seller.ID, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	totalPage := (total + int64(pageSize) - 1) / int64(pageSize)
	response.SuccessWithPage(c, gin.H{"products": products}, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	})
}

// CreateProduct creates a listing owned by the seller.
func (h *Handler) CreateProduct(c *gin.Context) {
	seller, ok := h.resolveSeller(c)
	if !ok {
		return
	}
	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	product, err := h.ProductService.CreateForSeller(seller.ID, input)
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.Success(c, gin.H{"product": product})
}

// UpdateProduct edits a listing; ownership is enforced.
func (h *Handler) UpdateProduct(c *gin.Context) {
	seller, ok := h.resolveSeller(c)
	if !ok {
		return
	}
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	product, err := h.ProductService.UpdateForSeller(seller.ID, productID, input)
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.Success(c, gin.H{"product": product})
}

// DeleteProduct removes a listing; ownership is enforced.
func (h *Handler) DeleteProduct(c *gin.Context) {
	seller, ok := h.resolveSeller(c)
	if !ok {
		return
	}
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.ProductService.DeleteForSeller(seller.ID, productID); err != nil {
		respondProductError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
