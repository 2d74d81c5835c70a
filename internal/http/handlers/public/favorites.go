package public

import (
	"errors"
	"strconv"

	"github.com/soukly/soukly/internal/http/response"
	"github.com/soukly/soukly/internal/service"

	handlershared "github.com/soukly/soukly/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

// ListFavorites returns the user's saved products, newest first.
func (h *Handler) ListFavorites(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	page, pageSize := handlershared.NormalizePagination(
		parseQueryInt(c, "page", 1),
		parseQueryInt(c, "page_size", 20),
	)

	favorites, total, err := h.FavoriteService.List(uid, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	totalPage := (total + int64(pageSize) - 1) / int64(pageSize)
	response.SuccessWithPage(c, gin.H{"favorites": favorites}, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	})
}

func parseProductIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("product_id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return 0, false
	}
	return uint(id), true
}

// AddFavorite saves a product. Saving twice is a no-op.
func (h *Handler) AddFavorite(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := parseProductIDParam(c)
	if !ok {
		return
	}

	if err := h.FavoriteService.Add(uid, productID); err != nil {
		if errors.Is(err, service.ErrProductNotAvailable) {
			respondError(c, response.CodeBadRequest, "error.product_not_available", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{"favorited": true})
}

// RemoveFavorite unsaves a product. Removing an absent favorite is a no-op.
func (h *Handler) RemoveFavorite(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := parseProductIDParam(c)
	if !ok {
		return
	}

	if err := h.FavoriteService.Remove(uid, productID); err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{"favorited": false})
}
