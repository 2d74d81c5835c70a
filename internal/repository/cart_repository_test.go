package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/soukly/soukly/internal/constants"
	"github.com/soukly/soukly/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartStoreTest(t *testing.T) *GormCartStore {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Cart{}); err != nil {
		t.Fatalf("migrate cart failed: %v", err)
	}
	return NewGormCartStore(db)
}

func sampleLineItem(key string, qty int) models.CartLineItem {
	return models.CartLineItem{
		ProductKey:     key,
		Title:          "Huile d'argan",
		Price:          models.NewMoneyFromDecimal(decimal.NewFromInt(120)),
		Currency:       constants.CurrencyMAD,
		SellerID:       1,
		SellerName:     "Coopérative Tifaout",
		SellerWhatsApp: "+212600000001",
		Quantity:       qty,
	}
}

func TestCartStoreSaveLoadRoundTrip(t *testing.T) {
	store := setupCartStoreTest(t)
	ctx := context.Background()

	items := []models.CartLineItem{sampleLineItem("p1", 2), sampleLineItem("p2", 1)}
	if err := store.Save(ctx, "cart-round-trip", items); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := store.Load(ctx, "cart-round-trip")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("want 2 items got %d", len(loaded))
	}
	if loaded[0].ProductKey != "p1" || loaded[0].Quantity != 2 {
		t.Fatalf("unexpected first item: %+v", loaded[0])
	}
}

func TestCartStoreSaveOverwritesWholesale(t *testing.T) {
	store := setupCartStoreTest(t)
	ctx := context.Background()

	if err := store.Save(ctx, "cart-overwrite", []models.CartLineItem{sampleLineItem("p1", 1), sampleLineItem("p2", 1)}); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if err := store.Save(ctx, "cart-overwrite", []models.CartLineItem{sampleLineItem("p3", 5)}); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	loaded, err := store.Load(ctx, "cart-overwrite")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ProductKey != "p3" {
		t.Fatalf("snapshot not overwritten: %+v", loaded)
	}
}

func TestCartStoreEmptySaveRemovesSnapshot(t *testing.T) {
	store := setupCartStoreTest(t)
	ctx := context.Background()

	if err := store.Save(ctx, "cart-empty", []models.CartLineItem{sampleLineItem("p1", 1)}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Save(ctx, "cart-empty", nil); err != nil {
		t.Fatalf("empty save failed: %v", err)
	}

	var count int64
	if err := store.db.Model(&models.Cart{}).Where("cart_id = ?", "cart-empty").Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("snapshot row still present")
	}

	loaded, err := store.Load(ctx, "cart-empty")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("want empty cart got %+v", loaded)
	}
}

func TestCartStoreCorruptSnapshotReadsAsEmpty(t *testing.T) {
	store := setupCartStoreTest(t)
	ctx := context.Background()

	row := models.Cart{CartID: "cart-corrupt", ItemsJSON: []byte("{not json"), UpdatedAt: time.Now()}
	if err := store.db.Create(&row).Error; err != nil {
		t.Fatalf("seed corrupt row failed: %v", err)
	}

	loaded, err := store.Load(ctx, "cart-corrupt")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("corrupt snapshot should read as empty, got %+v", loaded)
	}
}

func TestCartStoreMissingKeyReadsAsEmpty(t *testing.T) {
	store := setupCartStoreTest(t)

	loaded, err := store.Load(context.Background(), "cart-never-saved")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("want empty cart got %+v", loaded)
	}
}
