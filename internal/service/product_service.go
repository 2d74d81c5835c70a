package service

import (
	"regexp"
	"strings"

	"github.com/soukly/soukly/internal/constants"
	"github.com/soukly/soukly/internal/models"
	"github.com/soukly/soukly/internal/repository"

	"github.com/google/uuid"
)

var slugCleanPattern = regexp.MustCompile(`[^a-z0-9]+`)

// ProductInput carries seller-provided product fields.
type ProductInput struct {
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	PriceAmount   models.Money       `json:"price_amount"`
	PriceCurrency string             `json:"price_currency"`
	Images        models.StringArray `json:"images"`
	VideoURL      string             `json:"video_url"`
	Category      string             `json:"category"`
	Subcategory   string             `json:"subcategory"`
	Location      string             `json:"location"`
	IsActive      *bool              `json:"is_active"`
	SortOrder     *int               `json:"sort_order"`
}

// ProductService serves the public catalog and the seller's product CRUD.
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a product service.
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{productRepo: productRepo, categoryRepo: categoryRepo}
}

// List returns a page of the public catalog.
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	filter.OnlyActive = true
	filter.WithSeller = true
	return s.productRepo.List(filter)
}

// GetBySlug returns one live product.
func (s *ProductService) GetBySlug(slug string) (*models.Product, error) {
	product, err := s.productRepo.GetBySlug(strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrNotFound
	}
	return product, nil
}

// Categories returns the shared category catalog.
func (s *ProductService) Categories() ([]models.Category, error) {
	return s.categoryRepo.ListGlobal()
}

// ListForSeller returns a seller's own products, inactive ones included.
func (s *ProductService) ListForSeller(sellerID uint, page, pageSize int) ([]models.Product, int64, error) {
	return s.productRepo.List(repository.ProductListFilter{
		Page:     page,
		PageSize: pageSize,
		SellerID: sellerID,
	})
}

// CreateForSeller lists a new product under the seller.
func (s *ProductService) CreateForSeller(sellerID uint, input ProductInput) (*models.Product, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || input.PriceAmount.IsNegative() {
		return nil, ErrInvalidLineItem
	}
	currency := strings.ToUpper(strings.TrimSpace(input.PriceCurrency))
	if currency == "" {
		currency = constants.DefaultCurrency
	}

	slug, err := s.uniqueSlug(title)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		SellerID:      sellerID,
		Slug:          slug,
		Title:         title,
		Description:   strings.TrimSpace(input.Description),
		PriceAmount:   input.PriceAmount,
		PriceCurrency: currency,
		Images:        input.Images,
		VideoURL:      strings.TrimSpace(input.VideoURL),
		Category:      strings.TrimSpace(input.Category),
		Subcategory:   strings.TrimSpace(input.Subcategory),
		Location:      strings.TrimSpace(input.Location),
		IsActive:      true,
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		product.SortOrder = *input.SortOrder
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateForSeller edits a product the seller owns.
func (s *ProductService) UpdateForSeller(sellerID, productID uint, input ProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	if product.SellerID != sellerID {
		return nil, ErrForbidden
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		product.Title = title
	}
	if input.PriceAmount.IsNegative() {
		return nil, ErrInvalidLineItem
	}
	if !input.PriceAmount.IsZero() {
		product.PriceAmount = input.PriceAmount
	}
	if currency := strings.ToUpper(strings.TrimSpace(input.PriceCurrency)); currency != "" {
		product.PriceCurrency = currency
	}
	if input.Description != "" {
		product.Description = strings.TrimSpace(input.Description)
	}
	if len(input.Images) > 0 {
		product.Images = input.Images
	}
	if input.VideoURL != "" {
		product.VideoURL = strings.TrimSpace(input.VideoURL)
	}
	if input.Category != "" {
		product.Category = strings.TrimSpace(input.Category)
	}
	if input.Subcategory != "" {
		product.Subcategory = strings.TrimSpace(input.Subcategory)
	}
	if input.Location != "" {
		product.Location = strings.TrimSpace(input.Location)
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		product.SortOrder = *input.SortOrder
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteForSeller removes a product the seller owns.
func (s *ProductService) DeleteForSeller(sellerID, productID uint) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	if product.SellerID != sellerID {
		return ErrForbidden
	}
	return s.productRepo.Delete(productID)
}

func (s *ProductService) uniqueSlug(title string) (string, error) {
	base := Slugify(title)
	if base == "" {
		base = "produit"
	}
	existing, err := s.productRepo.GetBySlug(base)
	if err != nil {
		return "", err
	}
	if existing == nil {
		return base, nil
	}
	return base + "-" + uuid.NewString()[:8], nil
}

// Slugify lowercases a title into a URL-safe slug, folding common
// French accents first.
func Slugify(title string) string {
	replacer := strings.NewReplacer(
		"é", "e", "è", "e", "ê", "e", "ë", "e",
		"à", "a", "â", "a", "î", "i", "ï", "i",
		"ô", "o", "ö", "o", "ù", "u", "û", "u", "ü", "u",
		"ç", "c", "œ", "oe",
	)
	lowered := replacer.Replace(strings.ToLower(strings.TrimSpace(title)))
	slug := slugCleanPattern.ReplaceAllString(lowered, "-")
	return strings.Trim(slug, "-")
}
