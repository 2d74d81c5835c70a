package service

import (
	"github.com/soukly/soukly/internal/models"
	"github.com/soukly/soukly/internal/repository"
)

// FavoriteService manages the user's saved products.
type FavoriteService struct {
	favoriteRepo repository.FavoriteRepository
	productRepo  repository.ProductRepository
}

// NewFavoriteService creates a favorites service.
func NewFavoriteService(favoriteRepo repository.FavoriteRepository, productRepo repository.ProductRepository) *FavoriteService {
	return &FavoriteService{favoriteRepo: favoriteRepo, productRepo: productRepo}
}

// List returns the user's favorites.
func (s *FavoriteService) List(userID uint, page, pageSize int) ([]models.Favorite, int64, error) {
	return s.favoriteRepo.List(repository.FavoriteListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
	})
}

// Add saves a product. Saving one already saved is a no-op.
func (s *FavoriteService) Add(userID, productID uint) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil || !product.IsActive {
		return ErrProductNotAvailable
	}

	existing, err := s.favoriteRepo.Get(userID, productID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	return s.favoriteRepo.Create(&models.Favorite{UserID: userID, ProductID: productID})
}

// Remove unsaves a product; absent entries are a no-op.
func (s *FavoriteService) Remove(userID, productID uint) error {
	return s.favoriteRepo.Delete(userID, productID)
}
