package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/soukly/soukly/internal/config"
	"github.com/soukly/soukly/internal/constants"
	"github.com/soukly/soukly/internal/models"
	"github.com/soukly/soukly/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupUserAuthTest(t *testing.T) *UserAuthService {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.ExpireHours = 1
	cfg.JWT.RememberMeExpireHours = 24
	cfg.Security.PasswordPolicy.MinLength = 8
	cfg.Security.PasswordPolicy.RequireUpper = true
	cfg.Security.PasswordPolicy.RequireLower = true
	cfg.Security.PasswordPolicy.RequireNumber = true

	return NewUserAuthService(cfg, repository.NewUserRepository(db))
}

func TestRegisterAndLogin(t *testing.T) {
	svc := setupUserAuthTest(t)

	user, token, _, err := svc.Register(" Fatima@Souk.example ", "Soukly2024", "", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if token == "" {
		t.Fatalf("missing session token")
	}
	if user.Email == nil || *user.Email != "fatima@souk.example" {
		t.Fatalf("email not normalized: %+v", user.Email)
	}
	if user.DisplayName != "fatima" {
		t.Fatalf("display name want fatima got %s", user.DisplayName)
	}
	if user.Locale != constants.LangFR {
		t.Fatalf("default locale want fr got %s", user.Locale)
	}

	logged, token, _, err := svc.Login("fatima@souk.example", "Soukly2024", false)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if logged.ID != user.ID || token == "" {
		t.Fatalf("login returned wrong session: id=%d token=%q", logged.ID, token)
	}

	claims, err := svc.ParseUserJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("claims user id want %d got %d", user.ID, claims.UserID)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := setupUserAuthTest(t)

	if _, _, _, err := svc.Register("youssef@souk.example", "Soukly2024", "", ""); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, _, err := svc.Register("YOUSSEF@souk.example", "Soukly2024", "", ""); err != ErrEmailExists {
		t.Fatalf("want ErrEmailExists got %v", err)
	}
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	svc := setupUserAuthTest(t)

	_, _, _, err := svc.Register("amal@souk.example", "short", "", "")
	if err == nil {
		t.Fatalf("expected password policy rejection")
	}
	policyErr, ok := err.(interface {
		Key() string
		Args() []interface{}
	})
	if !ok {
		t.Fatalf("want policy error got %T %v", err, err)
	}
	if policyErr.Key() != "error.password_min_length" {
		t.Fatalf("policy key want error.password_min_length got %s", policyErr.Key())
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := setupUserAuthTest(t)

	if _, _, _, err := svc.Register("karim@souk.example", "Soukly2024", "", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, _, err := svc.Login("karim@souk.example", "WrongPass1", false); err != ErrInvalidCredentials {
		t.Fatalf("wrong password want ErrInvalidCredentials got %v", err)
	}
	if _, _, _, err := svc.Login("nobody@souk.example", "Soukly2024", false); err != ErrInvalidCredentials {
		t.Fatalf("unknown email want ErrInvalidCredentials got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc := setupUserAuthTest(t)

	user, _, _, err := svc.Register("nadia@souk.example", "Soukly2024", "", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.ChangePassword(user.ID, "WrongPass1", "Soukly2025"); err != ErrInvalidCredentials {
		t.Fatalf("wrong old password want ErrInvalidCredentials got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "Soukly2024", "Soukly2025"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}
	if _, _, _, err := svc.Login("nadia@souk.example", "Soukly2024", false); err != ErrInvalidCredentials {
		t.Fatalf("old password should fail after change, got %v", err)
	}
	if _, _, _, err := svc.Login("nadia@souk.example", "Soukly2025", false); err != nil {
		t.Fatalf("new password login failed: %v", err)
	}
}
