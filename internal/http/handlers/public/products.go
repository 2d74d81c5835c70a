package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/soukly/soukly/internal/http/response"
	"github.com/soukly/soukly/internal/models"
	"github.com/soukly/soukly/internal/repository"
	"github.com/soukly/soukly/internal/service"

	handlershared "github.com/soukly/soukly/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

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

func parseQueryMoney(c *gin.Context, key string) *models.Money {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return nil
	}
	m := models.NewMoneyFromDecimal(d)
	return &m
}

// ListProducts returns the public catalog page. Only active listings are
// visible here.
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := handlershared.NormalizePagination(
		parseQueryInt(c, "page", 1),
		parseQueryInt(c, "page_size", 20),
	)

	filter := repository.ProductListFilter{
		Page:        page,
		PageSize:    pageSize,
		Search:      strings.TrimSpace(c.Query("search")),
		Category:    strings.TrimSpace(c.Query("category")),
		Subcategory: strings.TrimSpace(c.Query("subcategory")),
		City:        strings.TrimSpace(c.Query("city")),
		MinPrice:    parseQueryMoney(c, "min_price"),
		MaxPrice:    parseQueryMoney(c, "max_price"),
		OrderBy:     strings.TrimSpace(c.Query("sort")),
	}

	products, total, err := h.ProductService.List(filter)
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

// GetProduct returns one active product by slug.
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.ProductService.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{"product": product})
}

// ListCategories returns the category tree: the fixed defaults plus any
// seller-defined entries.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.ProductService.Categories()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{"categories": categories})
}
