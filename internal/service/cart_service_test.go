package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/soukly/soukly/internal/constants"
	"github.com/soukly/soukly/internal/models"
	"github.com/soukly/soukly/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Seller{}, &models.Product{}, &models.Cart{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	store := repository.NewGormCartStore(db)
	productRepo := repository.NewProductRepository(db)
	return NewCartService(store, productRepo), db
}

var sellerUserSeq uint

func seedSellerWithProduct(t *testing.T, db *gorm.DB, sellerName, whatsapp, slug, title string, price int64) *models.Product {
	t.Helper()
	sellerUserSeq++
	seller := &models.Seller{UserID: sellerUserSeq, Name: sellerName, WhatsApp: whatsapp, City: "Marrakech", IsActive: true}
	if err := db.Create(seller).Error; err != nil {
		t.Fatalf("create seller failed: %v", err)
	}
	product := &models.Product{
		SellerID:      seller.ID,
		Slug:          slug,
		Title:         title,
		PriceAmount:   models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		PriceCurrency: constants.CurrencyMAD,
		Images:        models.StringArray{"https://img.example/" + slug + ".jpg"},
		IsActive:      true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestAddItemRepeatedCallsIncrementSingleLine(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	ctx := context.Background()
	product := seedSellerWithProduct(t, db, "Atlas Artisanat", "+212600000001", "tapis-berbere", "Tapis berbère", 890)

	items, incremented, err := svc.AddItem(ctx, "cart-add", product.ID, 1)
	if err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if incremented {
		t.Fatalf("first add should create a new line")
	}
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Fatalf("unexpected cart after first add: %+v", items)
	}

	items, incremented, err = svc.AddItem(ctx, "cart-add", product.ID, 1)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if !incremented {
		t.Fatalf("second add should increment the existing line")
	}
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("want single line with quantity 2, got %+v", items)
	}
}

func TestAddItemRejectsQuantityBelowOne(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedSellerWithProduct(t, db, "Atlas Artisanat", "+212600000001", "poterie-safi", "Poterie de Safi", 150)

	if _, _, err := svc.AddItem(context.Background(), "cart-reject", product.ID, 0); err != ErrQuantityInvalid {
		t.Fatalf("want ErrQuantityInvalid got %v", err)
	}
}

func TestAddItemUnknownProductFails(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	if _, _, err := svc.AddItem(context.Background(), "cart-missing", 9999, 1); err != ErrProductNotAvailable {
		t.Fatalf("want ErrProductNotAvailable got %v", err)
	}
}

func TestUpdateQuantityRejectsNonPositiveAndKeepsState(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	ctx := context.Background()
	product := seedSellerWithProduct(t, db, "Atlas Artisanat", "+212600000001", "lanterne-fer", "Lanterne en fer forgé", 210)

	if _, _, err := svc.AddItem(ctx, "cart-update", product.ID, 3); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	for _, qty := range []int{0, -1} {
		if _, err := svc.UpdateQuantity(ctx, "cart-update", items0Key(t, svc, ctx, "cart-update"), qty); err != ErrQuantityInvalid {
			t.Fatalf("quantity %d: want ErrQuantityInvalid got %v", qty, err)
		}
	}

	items, err := svc.Items(ctx, "cart-update")
	if err != nil {
		t.Fatalf("items failed: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 3 {
		t.Fatalf("quantity should be unchanged, got %+v", items)
	}

	items, err = svc.UpdateQuantity(ctx, "cart-update", items[0].ProductKey, 5)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if items[0].Quantity != 5 {
		t.Fatalf("want quantity 5 got %d", items[0].Quantity)
	}
}

func items0Key(t *testing.T, svc *CartService, ctx context.Context, cartID string) string {
	t.Helper()
	items, err := svc.Items(ctx, cartID)
	if err != nil || len(items) == 0 {
		t.Fatalf("cart empty or unreadable: %v", err)
	}
	return items[0].ProductKey
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	ctx := context.Background()
	product := seedSellerWithProduct(t, db, "Atlas Artisanat", "+212600000001", "sac-cuir", "Sac en cuir", 450)

	if _, _, err := svc.AddItem(ctx, "cart-remove", product.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	key := items0Key(t, svc, ctx, "cart-remove")

	items, err := svc.RemoveItem(ctx, "cart-remove", key)
	if err != nil {
		t.Fatalf("first remove failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("cart should be empty, got %+v", items)
	}

	items, err = svc.RemoveItem(ctx, "cart-remove", key)
	if err != nil {
		t.Fatalf("second remove failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("second remove should be a no-op, got %+v", items)
	}
}

func TestCartTotalsRecomputedFromItems(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	ctx := context.Background()
	productA := seedSellerWithProduct(t, db, "Atlas Artisanat", "+212600000001", "huile-argan-500", "Huile d'argan 500ml", 100)
	productB := seedSellerWithProduct(t, db, "Souk Zitoun", "+212600000002", "olives-picholine", "Olives picholine 1kg", 50)

	if _, _, err := svc.AddItem(ctx, "cart-totals", productA.ID, 1); err != nil {
		t.Fatalf("add A failed: %v", err)
	}
	if _, _, err := svc.AddItem(ctx, "cart-totals", productA.ID, 1); err != nil {
		t.Fatalf("add A again failed: %v", err)
	}
	if _, _, err := svc.AddItem(ctx, "cart-totals", productB.ID, 1); err != nil {
		t.Fatalf("add B failed: %v", err)
	}

	items, err := svc.Items(ctx, "cart-totals")
	if err != nil {
		t.Fatalf("items failed: %v", err)
	}
	if got := TotalItemCount(items); got != 3 {
		t.Fatalf("total item count want 3 got %d", got)
	}
	if got := TotalPrice(items, constants.CurrencyMAD).Plain(); got != "250" {
		t.Fatalf("total price want 250 got %s", got)
	}

	groups, err := GroupBySeller(items)
	if err != nil {
		t.Fatalf("group failed: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("want 2 seller groups got %d", len(groups))
	}
	if groups[0].Total.Plain() != "200" {
		t.Fatalf("first group subtotal want 200 got %s", groups[0].Total.Plain())
	}
	if groups[1].Total.Plain() != "50" {
		t.Fatalf("second group subtotal want 50 got %s", groups[1].Total.Plain())
	}
}

func TestClearEmptiesCartAndSnapshot(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	ctx := context.Background()
	product := seedSellerWithProduct(t, db, "Atlas Artisanat", "+212600000001", "plateau-cuivre", "Plateau en cuivre", 320)

	if _, _, err := svc.AddItem(ctx, "cart-clear", product.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.Clear(ctx, "cart-clear"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	items, err := svc.Items(ctx, "cart-clear")
	if err != nil {
		t.Fatalf("items failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("cart should be empty after clear, got %+v", items)
	}

	var count int64
	if err := db.Model(&models.Cart{}).Where("cart_id = ?", "cart-clear").Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("snapshot should be removed after clear")
	}
}
