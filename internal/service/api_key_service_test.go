package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/soukly/soukly/internal/models"
	"github.com/soukly/soukly/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAPIKeyTest(t *testing.T) (*APIKeyService, *models.Seller) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Seller{}, &models.SellerAPIKey{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	sellerUserSeq++
	seller := &models.Seller{UserID: sellerUserSeq, Name: "Atlas Artisanat", WhatsApp: "+212600000009", IsActive: true}
	if err := db.Create(seller).Error; err != nil {
		t.Fatalf("create seller failed: %v", err)
	}

	return NewAPIKeyService(repository.NewSellerAPIKeyRepository(db), repository.NewSellerRepository(db)), seller
}

func TestAPIKeyIssueAndAuthenticate(t *testing.T) {
	svc, seller := setupAPIKeyTest(t)

	key, plaintext, err := svc.Issue(seller.ID, "sync script")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if !strings.HasPrefix(plaintext, "sk_souk_") {
		t.Fatalf("unexpected key format: %s", plaintext)
	}
	if key.KeyHash == plaintext {
		t.Fatalf("plaintext must not be stored")
	}
	if !strings.HasPrefix(plaintext, key.Prefix) {
		t.Fatalf("prefix %q does not match key", key.Prefix)
	}

	resolved, err := svc.Authenticate(plaintext)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if resolved.ID != seller.ID {
		t.Fatalf("resolved wrong seller: %d", resolved.ID)
	}
}

func TestAPIKeyAuthenticateRejectsUnknownAndRevoked(t *testing.T) {
	svc, seller := setupAPIKeyTest(t)

	if _, err := svc.Authenticate("sk_souk_definitely-not-issued"); err != ErrAPIKeyInvalid {
		t.Fatalf("unknown key: want ErrAPIKeyInvalid got %v", err)
	}
	if _, err := svc.Authenticate("wrong-prefix"); err != ErrAPIKeyInvalid {
		t.Fatalf("bad prefix: want ErrAPIKeyInvalid got %v", err)
	}

	key, plaintext, err := svc.Issue(seller.ID, "to revoke")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if err := svc.Revoke(seller.ID, key.ID); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if _, err := svc.Authenticate(plaintext); err != ErrAPIKeyInvalid {
		t.Fatalf("revoked key: want ErrAPIKeyInvalid got %v", err)
	}
}
