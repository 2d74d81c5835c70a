package repository

import (
	"errors"

	"github.com/soukly/soukly/internal/models"

	"gorm.io/gorm"
)

// SellerRepository is the seller data access interface.
type SellerRepository interface {
	GetByID(id uint) (*models.Seller, error)
	GetByUserID(userID uint) (*models.Seller, error)
	ListByIDs(ids []uint) ([]models.Seller, error)
	Create(seller *models.Seller) error
	Update(seller *models.Seller) error
}

// GormSellerRepository is the GORM implementation.
type GormSellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository creates a seller repository.
func NewSellerRepository(db *gorm.DB) *GormSellerRepository {
	return &GormSellerRepository{db: db}
}

// GetByID looks a seller up by ID.
func (r *GormSellerRepository) GetByID(id uint) (*models.Seller, error) {
	var seller models.Seller
	if err := r.db.First(&seller, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &seller, nil
}

// GetByUserID looks a seller up by its owning user.
func (r *GormSellerRepository) GetByUserID(userID uint) (*models.Seller, error) {
	var seller models.Seller
	if err := r.db.Where("user_id = ?", userID).First(&seller).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &seller, nil
}

// ListByIDs fetches sellers in bulk.
func (r *GormSellerRepository) ListByIDs(ids []uint) ([]models.Seller, error) {
	if len(ids) == 0 {
		return []models.Seller{}, nil
	}
	var sellers []models.Seller
	if err := r.db.Where("id IN ?", ids).Find(&sellers).Error; err != nil {
		return nil, err
	}
	return sellers, nil
}

// Create inserts a seller.
func (r *GormSellerRepository) Create(seller *models.Seller) error {
	return r.db.Create(seller).Error
}

// Update saves a seller.
func (r *GormSellerRepository) Update(seller *models.Seller) error {
	return r.db.Save(seller).Error
}
