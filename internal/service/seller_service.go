package service

import (
	"strings"
	"time"

	"github.com/soukly/soukly/internal/authz"
	"github.com/soukly/soukly/internal/logger"
	"github.com/soukly/soukly/internal/models"
	"github.com/soukly/soukly/internal/repository"
)

// SellerProfileInput carries seller profile fields.
type SellerProfileInput struct {
	Name     string `json:"name"`
	WhatsApp string `json:"whatsapp"`
	City     string `json:"city"`
}

// SellerDashboard is the summary shown on the seller home screen.
type SellerDashboard struct {
	Seller       *models.Seller `json:"seller"`
	ProductCount int64          `json:"product_count"`
	ActiveKeys   int            `json:"active_keys"`
}

// SellerService manages seller profiles and the dashboard.
type SellerService struct {
	sellerRepo  repository.SellerRepository
	productRepo repository.ProductRepository
	keyRepo     repository.SellerAPIKeyRepository
	authzSvc    *authz.Service
}

// NewSellerService creates a seller service.
func NewSellerService(sellerRepo repository.SellerRepository, productRepo repository.ProductRepository, keyRepo repository.SellerAPIKeyRepository, authzSvc *authz.Service) *SellerService {
	return &SellerService{
		sellerRepo:  sellerRepo,
		productRepo: productRepo,
		keyRepo:     keyRepo,
		authzSvc:    authzSvc,
	}
}

// Become creates the seller profile for a user and grants the seller role.
func (s *SellerService) Become(userID uint, input SellerProfileInput) (*models.Seller, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrSellerRequired
	}
	whatsapp, err := NormalizePhone(input.WhatsApp)
	if err != nil {
		return nil, err
	}

	existing, err := s.sellerRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSellerExists
	}

	now := time.Now()
	seller := &models.Seller{
		UserID:    userID,
		Name:      name,
		WhatsApp:  whatsapp,
		City:      strings.TrimSpace(input.City),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.sellerRepo.Create(seller); err != nil {
		return nil, err
	}

	if s.authzSvc != nil {
		if err := s.authzSvc.GrantSellerRole(userID); err != nil {
			logger.Warnw("grant_seller_role_failed", "user_id", userID, "error", err)
		}
	}
	return seller, nil
}

// GetByUserID returns the user's seller profile.
func (s *SellerService) GetByUserID(userID uint) (*models.Seller, error) {
	seller, err := s.sellerRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, ErrSellerRequired
	}
	return seller, nil
}

// UpdateProfile edits the seller profile.
func (s *SellerService) UpdateProfile(userID uint, input SellerProfileInput) (*models.Seller, error) {
	seller, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		seller.Name = name
	}
	if strings.TrimSpace(input.WhatsApp) != "" {
		whatsapp, err := NormalizePhone(input.WhatsApp)
		if err != nil {
			return nil, err
		}
		seller.WhatsApp = whatsapp
	}
	if city := strings.TrimSpace(input.City); city != "" {
		seller.City = city
	}

	seller.UpdatedAt = time.Now()
	if err := s.sellerRepo.Update(seller); err != nil {
		return nil, err
	}
	return seller, nil
}

// Dashboard assembles the seller summary.
func (s *SellerService) Dashboard(userID uint) (*SellerDashboard, error) {
	seller, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	count, err := s.productRepo.CountBySeller(seller.ID)
	if err != nil {
		return nil, err
	}
	keys, err := s.keyRepo.ListBySeller(seller.ID)
	if err != nil {
		return nil, err
	}
	active := 0
	for _, key := range keys {
		if key.RevokedAt == nil {
			active++
		}
	}
	return &SellerDashboard{Seller: seller, ProductCount: count, ActiveKeys: active}, nil
}
