package repository

import (
	"errors"
	"time"

	"github.com/soukly/soukly/internal/models"

	"gorm.io/gorm"
)

// SellerAPIKeyRepository is the seller API key data access interface.
type SellerAPIKeyRepository interface {
	Create(key *models.SellerAPIKey) error
	GetByHash(keyHash string) (*models.SellerAPIKey, error)
	ListBySeller(sellerID uint) ([]models.SellerAPIKey, error)
	Revoke(id, sellerID uint, revokedAt time.Time) error
	TouchLastUsed(id uint, usedAt time.Time) error
}

// GormSellerAPIKeyRepository is the GORM implementation.
type GormSellerAPIKeyRepository struct {
	db *gorm.DB
}

// NewSellerAPIKeyRepository creates a seller API key repository.
func NewSellerAPIKeyRepository(db *gorm.DB) *GormSellerAPIKeyRepository {
	return &GormSellerAPIKeyRepository{db: db}
}

// Create inserts a key record.
func (r *GormSellerAPIKeyRepository) Create(key *models.SellerAPIKey) error {
	return r.db.Create(key).Error
}

// GetByHash looks a non-revoked key up by hash.
func (r *GormSellerAPIKeyRepository) GetByHash(keyHash string) (*models.SellerAPIKey, error) {
	var key models.SellerAPIKey
	if err := r.db.Where("key_hash = ? AND revoked_at IS NULL", keyHash).First(&key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &key, nil
}

// ListBySeller returns all of a seller's keys, newest first.
func (r *GormSellerAPIKeyRepository) ListBySeller(sellerID uint) ([]models.SellerAPIKey, error) {
	var keys []models.SellerAPIKey
	if err := r.db.Where("seller_id = ?", sellerID).Order("id DESC").Find(&keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}

// Revoke marks a key revoked. The seller scope keeps one seller from
// revoking another's keys.
func (r *GormSellerAPIKeyRepository) Revoke(id, sellerID uint, revokedAt time.Time) error {
	return r.db.Model(&models.SellerAPIKey{}).
		Where("id = ? AND seller_id = ? AND revoked_at IS NULL", id, sellerID).
		Update("revoked_at", revokedAt).Error
}

// TouchLastUsed records key usage.
func (r *GormSellerAPIKeyRepository) TouchLastUsed(id uint, usedAt time.Time) error {
	return r.db.Model(&models.SellerAPIKey{}).
		Where("id = ?", id).
		Update("last_used_at", usedAt).Error
}
