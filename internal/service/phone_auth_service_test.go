package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/soukly/soukly/internal/config"
	"github.com/soukly/soukly/internal/constants"
	"github.com/soukly/soukly/internal/models"
	"github.com/soukly/soukly/internal/queue"
	"github.com/soukly/soukly/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupPhoneAuthTest(t *testing.T) (*PhoneAuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.PhoneVerifyCode{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.ExpireHours = 1
	cfg.OTP.ExpireMinutes = 10
	cfg.OTP.SendIntervalSeconds = 60
	cfg.OTP.MaxAttempts = 3
	cfg.OTP.Length = 6

	userRepo := repository.NewUserRepository(db)
	codeRepo := repository.NewPhoneVerifyCodeRepository(db)
	queueClient, _ := queue.NewClient(nil)
	authService := NewUserAuthService(cfg, userRepo)
	return NewPhoneAuthService(cfg, userRepo, codeRepo, queueClient, authService), db
}

func latestCode(t *testing.T, db *gorm.DB, phone string) *models.PhoneVerifyCode {
	t.Helper()
	var record models.PhoneVerifyCode
	if err := db.Where("phone = ?", phone).Order("id desc").First(&record).Error; err != nil {
		t.Fatalf("load code failed: %v", err)
	}
	return &record
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"+212 600-000-001", "+212600000001", true},
		{"00212600000001", "+212600000001", true},
		{"0600000001", "", false},
		{"not-a-phone", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := NormalizePhone(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("NormalizePhone(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
		if !tc.ok && err != ErrPhoneInvalid {
			t.Fatalf("NormalizePhone(%q) want ErrPhoneInvalid got %v", tc.in, err)
		}
	}
}

func TestSendOTPEnforcesInterval(t *testing.T) {
	svc, _ := setupPhoneAuthTest(t)

	if err := svc.SendOTP("+212611111111", constants.LangFR); err != nil {
		t.Fatalf("first send failed: %v", err)
	}
	if err := svc.SendOTP("+212611111111", constants.LangFR); err != ErrCodeSendInterval {
		t.Fatalf("want ErrCodeSendInterval got %v", err)
	}
}

func TestVerifyOTPCreatesUserOnFirstLogin(t *testing.T) {
	svc, db := setupPhoneAuthTest(t)

	if err := svc.SendOTP("+212622222222", constants.LangAR); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	record := latestCode(t, db, "+212622222222")

	user, token, _, err := svc.VerifyOTP("+212622222222", record.Code, constants.LangAR)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if token == "" {
		t.Fatalf("missing session token")
	}
	if user.Phone == nil || *user.Phone != "+212622222222" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.Locale != constants.LangAR {
		t.Fatalf("locale want ar got %s", user.Locale)
	}
}

func TestVerifyOTPRejectsWrongCodeAndCountsAttempts(t *testing.T) {
	svc, db := setupPhoneAuthTest(t)

	if err := svc.SendOTP("+212633333333", constants.LangFR); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	wrong := "000000"
	if latestCode(t, db, "+212633333333").Code == wrong {
		wrong = "111111"
	}
	for i := 0; i < 3; i++ {
		if _, _, _, err := svc.VerifyOTP("+212633333333", wrong, constants.LangFR); err != ErrCodeInvalid {
			t.Fatalf("attempt %d: want ErrCodeInvalid got %v", i, err)
		}
	}

	record := latestCode(t, db, "+212633333333")
	if _, _, _, err := svc.VerifyOTP("+212633333333", record.Code, constants.LangFR); err != ErrCodeAttemptsExceeded {
		t.Fatalf("want ErrCodeAttemptsExceeded got %v", err)
	}
}

func TestVerifyOTPRejectsExpiredCode(t *testing.T) {
	svc, db := setupPhoneAuthTest(t)

	if err := svc.SendOTP("+212644444444", constants.LangFR); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	record := latestCode(t, db, "+212644444444")
	if err := db.Model(record).Update("expires_at", time.Now().Add(-time.Minute)).Error; err != nil {
		t.Fatalf("expire code failed: %v", err)
	}

	if _, _, _, err := svc.VerifyOTP("+212644444444", record.Code, constants.LangFR); err != ErrCodeExpired {
		t.Fatalf("want ErrCodeExpired got %v", err)
	}
}
