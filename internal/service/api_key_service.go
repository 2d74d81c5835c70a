package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"
	"time"

	"github.com/soukly/soukly/internal/models"
	"github.com/soukly/soukly/internal/repository"
)

const apiKeyPrefix = "sk_souk_"

// APIKeyService issues and checks the opaque keys sellers use for the
// machine API. Only the SHA-256 hash is stored; the plaintext is shown
// once at creation.
type APIKeyService struct {
	keyRepo    repository.SellerAPIKeyRepository
	sellerRepo repository.SellerRepository
}

// NewAPIKeyService creates an API key service.
func NewAPIKeyService(keyRepo repository.SellerAPIKeyRepository, sellerRepo repository.SellerRepository) *APIKeyService {
	return &APIKeyService{keyRepo: keyRepo, sellerRepo: sellerRepo}
}

// Issue mints a new key for the seller and returns the plaintext.
func (s *APIKeyService) Issue(sellerID uint, name string) (*models.SellerAPIKey, string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, "", err
	}
	plaintext := apiKeyPrefix + base64.RawURLEncoding.EncodeToString(raw)

	key := &models.SellerAPIKey{
		SellerID:  sellerID,
		Name:      strings.TrimSpace(name),
		KeyHash:   HashAPIKey(plaintext),
		Prefix:    plaintext[:len(apiKeyPrefix)+6],
		CreatedAt: time.Now(),
	}
	if err := s.keyRepo.Create(key); err != nil {
		return nil, "", err
	}
	return key, plaintext, nil
}

// List returns the seller's keys.
func (s *APIKeyService) List(sellerID uint) ([]models.SellerAPIKey, error) {
	return s.keyRepo.ListBySeller(sellerID)
}

// Revoke disables one of the seller's keys.
func (s *APIKeyService) Revoke(sellerID, keyID uint) error {
	return s.keyRepo.Revoke(keyID, sellerID, time.Now())
}

// Authenticate resolves a plaintext key to its seller.
func (s *APIKeyService) Authenticate(plaintext string) (*models.Seller, error) {
	plaintext = strings.TrimSpace(plaintext)
	if !strings.HasPrefix(plaintext, apiKeyPrefix) {
		return nil, ErrAPIKeyInvalid
	}

	key, err := s.keyRepo.GetByHash(HashAPIKey(plaintext))
	if err != nil {
		return nil, err
	}
	if key == nil {
		return nil, ErrAPIKeyInvalid
	}

	seller, err := s.sellerRepo.GetByID(key.SellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil || !seller.IsActive {
		return nil, ErrAPIKeyInvalid
	}

	_ = s.keyRepo.TouchLastUsed(key.ID, time.Now())
	return seller, nil
}

// HashAPIKey hashes a plaintext key for storage and lookup.
func HashAPIKey(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
