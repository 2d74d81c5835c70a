package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/soukly/soukly/internal/cache"
	"github.com/soukly/soukly/internal/logger"
	"github.com/soukly/soukly/internal/models"

	"gorm.io/gorm"
)

const cartSnapshotTTL = 30 * 24 * time.Hour

// CartStore persists a cart as one serialized snapshot per cart key.
// Save overwrites the whole snapshot; saving an empty cart removes the
// key entirely. A snapshot that fails to decode is treated as an empty
// cart rather than an error.
type CartStore interface {
	Load(ctx context.Context, cartID string) ([]models.CartLineItem, error)
	Save(ctx context.Context, cartID string, items []models.CartLineItem) error
	Delete(ctx context.Context, cartID string) error
}

func cartSnapshotKey(cartID string) string {
	return fmt.Sprintf("cart:%s", cartID)
}

// RedisCartStore keeps cart snapshots in Redis with a sliding TTL.
type RedisCartStore struct{}

// NewRedisCartStore creates a Redis-backed cart store.
func NewRedisCartStore() *RedisCartStore {
	return &RedisCartStore{}
}

// Load reads a snapshot. A missing key yields an empty cart.
func (s *RedisCartStore) Load(ctx context.Context, cartID string) ([]models.CartLineItem, error) {
	var items []models.CartLineItem
	hit, err := cache.GetJSON(ctx, cartSnapshotKey(cartID), &items)
	if err != nil {
		logger.Warnw("cart_snapshot_unreadable", "cart_id", cartID, "error", err)
		return []models.CartLineItem{}, nil
	}
	if !hit || items == nil {
		return []models.CartLineItem{}, nil
	}
	return items, nil
}

// Save overwrites the snapshot, removing the key when the cart is empty.
func (s *RedisCartStore) Save(ctx context.Context, cartID string, items []models.CartLineItem) error {
	if len(items) == 0 {
		return s.Delete(ctx, cartID)
	}
	return cache.SetJSON(ctx, cartSnapshotKey(cartID), items, cartSnapshotTTL)
}

// Delete removes the snapshot.
func (s *RedisCartStore) Delete(ctx context.Context, cartID string) error {
	return cache.Del(ctx, cartSnapshotKey(cartID))
}

// GormCartStore keeps cart snapshots in the carts table. It backs
// deployments that run without Redis.
type GormCartStore struct {
	db *gorm.DB
}

// NewGormCartStore creates a database-backed cart store.
func NewGormCartStore(db *gorm.DB) *GormCartStore {
	return &GormCartStore{db: db}
}

// Load reads a snapshot row. A missing or undecodable row yields an
// empty cart.
func (s *GormCartStore) Load(ctx context.Context, cartID string) ([]models.CartLineItem, error) {
	var row models.Cart
	if err := s.db.WithContext(ctx).Where("cart_id = ?", cartID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.CartLineItem{}, nil
		}
		return nil, err
	}
	var items []models.CartLineItem
	if err := json.Unmarshal(row.ItemsJSON, &items); err != nil {
		logger.Warnw("cart_snapshot_unreadable", "cart_id", cartID, "error", err)
		return []models.CartLineItem{}, nil
	}
	if items == nil {
		items = []models.CartLineItem{}
	}
	return items, nil
}

// Save overwrites the snapshot row, removing it when the cart is empty.
func (s *GormCartStore) Save(ctx context.Context, cartID string, items []models.CartLineItem) error {
	if len(items) == 0 {
		return s.Delete(ctx, cartID)
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	row := models.Cart{
		CartID:    cartID,
		ItemsJSON: payload,
		UpdatedAt: time.Now(),
	}
	return s.db.WithContext(ctx).Save(&row).Error
}

// Delete removes the snapshot row.
func (s *GormCartStore) Delete(ctx context.Context, cartID string) error {
	return s.db.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&models.Cart{}).Error
}
