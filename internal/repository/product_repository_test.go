package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/soukly/soukly/internal/constants"
	"github.com/soukly/soukly/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Seller{}, &models.Product{}); err != nil {
		t.Fatalf("migrate seller/product failed: %v", err)
	}
	return NewProductRepository(db), db
}

func createTestProduct(t *testing.T, repo *GormProductRepository, slug, title, category string, sellerID uint, price int64, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		SellerID:      sellerID,
		Slug:          slug,
		Title:         title,
		PriceAmount:   models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		PriceCurrency: constants.CurrencyMAD,
		Category:      category,
		IsActive:      active,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestProductListFiltersByCategoryAndActive(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	createTestProduct(t, repo, "babouches-cuir", "Babouches en cuir", "Fashion", 1, 249, true)
	createTestProduct(t, repo, "huile-argan", "Huile d'argan", "Beauty", 1, 120, true)
	createTestProduct(t, repo, "caftan-brode", "Caftan brodé", "Fashion", 2, 890, false)

	products, total, err := repo.List(ProductListFilter{Category: "Fashion", OnlyActive: true, PageSize: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("total want 1 got %d", total)
	}
	if len(products) != 1 || products[0].Slug != "babouches-cuir" {
		t.Fatalf("unexpected products: %+v", products)
	}
}

func TestProductCreatePreservesInactiveFlag(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	created := createTestProduct(t, repo, "caftan-hiver", "Caftan d'hiver", "Fashion", 1, 650, false)

	loaded, err := repo.GetByID(created.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if loaded == nil {
		t.Fatalf("product not found after create")
	}
	if loaded.IsActive {
		t.Fatalf("product created inactive came back active")
	}
}

func TestProductListSearchMatchesTitle(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	createTestProduct(t, repo, "tajine-terre", "Tajine en terre cuite", "Home & Decor", 1, 180, true)
	createTestProduct(t, repo, "theiere-argent", "Théière argentée", "Home & Decor", 1, 350, true)

	products, total, err := repo.List(ProductListFilter{Search: "Tajine", PageSize: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(products) != 1 {
		t.Fatalf("search want 1 result got total=%d len=%d", total, len(products))
	}
}

func TestProductListPriceOrdering(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	createTestProduct(t, repo, "cheap", "Savon noir", "Beauty", 1, 40, true)
	createTestProduct(t, repo, "mid", "Huile d'argan pure", "Beauty", 1, 120, true)
	createTestProduct(t, repo, "pricey", "Coffret hammam", "Beauty", 1, 320, true)

	products, _, err := repo.List(ProductListFilter{OrderBy: "price_asc", PageSize: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("want 3 products got %d", len(products))
	}
	if products[0].Slug != "cheap" || products[2].Slug != "pricey" {
		t.Fatalf("unexpected order: %s, %s, %s", products[0].Slug, products[1].Slug, products[2].Slug)
	}
}

func TestProductGetBySlugMissingReturnsNil(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)

	product, err := repo.GetBySlug("does-not-exist")
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if product != nil {
		t.Fatalf("want nil product got %+v", product)
	}
}
