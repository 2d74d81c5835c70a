package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/soukly/soukly/internal/cache"
	"github.com/soukly/soukly/internal/config"
	"github.com/soukly/soukly/internal/constants"
	"github.com/soukly/soukly/internal/models"
	"github.com/soukly/soukly/internal/queue"
	"github.com/soukly/soukly/internal/repository"
)

var phonePattern = regexp.MustCompile(`^\+[1-9][0-9]{7,14}$`)

// PhoneAuthService handles login by one-time code delivered over WhatsApp.
type PhoneAuthService struct {
	cfg         *config.Config
	userRepo    repository.UserRepository
	codeRepo    repository.PhoneVerifyCodeRepository
	queueClient *queue.Client
	authService *UserAuthService
}

// NewPhoneAuthService creates a phone auth service.
func NewPhoneAuthService(cfg *config.Config, userRepo repository.UserRepository, codeRepo repository.PhoneVerifyCodeRepository, queueClient *queue.Client, authService *UserAuthService) *PhoneAuthService {
	return &PhoneAuthService{
		cfg:         cfg,
		userRepo:    userRepo,
		codeRepo:    codeRepo,
		queueClient: queueClient,
		authService: authService,
	}
}

// SendOTP generates a code and queues its WhatsApp delivery.
func (s *PhoneAuthService) SendOTP(phone, locale string) error {
	normalized, err := NormalizePhone(phone)
	if err != nil {
		return err
	}

	latest, err := s.codeRepo.GetLatest(normalized, constants.VerifyPurposeLogin)
	if err != nil {
		return err
	}
	now := time.Now()
	if latest != nil {
		interval := time.Duration(resolveOTPSendInterval(s.cfg.OTP)) * time.Second
		if !latest.SentAt.IsZero() && now.Sub(latest.SentAt) < interval {
			return ErrCodeSendInterval
		}
	}

	code, err := randomNumericCode(resolveOTPLength(s.cfg.OTP))
	if err != nil {
		return err
	}

	record := &models.PhoneVerifyCode{
		Phone:     normalized,
		Purpose:   constants.VerifyPurposeLogin,
		Code:      code,
		ExpiresAt: now.Add(time.Duration(resolveOTPExpireMinutes(s.cfg.OTP)) * time.Minute),
		SentAt:    now,
		CreatedAt: now,
	}
	if err := s.codeRepo.Create(record); err != nil {
		return err
	}

	return s.queueClient.EnqueueWhatsAppOTP(queue.WhatsAppOTPPayload{
		Phone:  normalized,
		Code:   code,
		Locale: locale,
	})
}

// VerifyOTP checks a code and logs the phone's account in, creating the
// account on first login.
func (s *PhoneAuthService) VerifyOTP(phone, code, locale string) (*models.User, string, time.Time, error) {
	normalized, err := NormalizePhone(phone)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if err := s.consumeCode(normalized, constants.VerifyPurposeLogin, code); err != nil {
		return nil, "", time.Time{}, err
	}

	user, err := s.userRepo.GetByPhone(normalized)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	now := time.Now()
	if user == nil {
		lang := strings.TrimSpace(locale)
		if lang == "" {
			lang = constants.LangFR
		}
		user = &models.User{
			Phone:       &normalized,
			DisplayName: normalized,
			Locale:      lang,
			Status:      constants.UserStatusActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.userRepo.Create(user); err != nil {
			return nil, "", time.Time{}, err
		}
	} else if strings.ToLower(user.Status) != constants.UserStatusActive {
		return nil, "", time.Time{}, ErrUserDisabled
	}

	token, expiresAt, err := s.authService.GenerateUserJWT(user, 0)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user.LastLoginAt = &now
	if err := s.userRepo.Update(user); err != nil {
		return nil, "", time.Time{}, err
	}
	_ = cache.SetUserAuthState(context.Background(), cache.BuildUserAuthState(user))

	return user, token, expiresAt, nil
}

func (s *PhoneAuthService) consumeCode(phone, purpose, code string) error {
	record, err := s.codeRepo.GetLatest(phone, purpose)
	if err != nil {
		return err
	}
	if record == nil || record.VerifiedAt != nil {
		return ErrCodeInvalid
	}

	now := time.Now()
	if record.ExpiresAt.Before(now) {
		return ErrCodeExpired
	}

	maxAttempts := resolveOTPMaxAttempts(s.cfg.OTP)
	if maxAttempts > 0 && record.AttemptCount >= maxAttempts {
		return ErrCodeAttemptsExceeded
	}

	if strings.TrimSpace(record.Code) != strings.TrimSpace(code) {
		_ = s.codeRepo.IncrementAttempt(record.ID)
		return ErrCodeInvalid
	}

	return s.codeRepo.MarkVerified(record.ID, now)
}

// NormalizePhone canonicalizes a phone number to +<digits> international
// form. "00" prefixes become "+", separators are stripped.
func NormalizePhone(phone string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '.':
			return -1
		}
		return r
	}, strings.TrimSpace(phone))

	if strings.HasPrefix(cleaned, "00") {
		cleaned = "+" + cleaned[2:]
	}
	if !phonePattern.MatchString(cleaned) {
		return "", ErrPhoneInvalid
	}
	return cleaned, nil
}

func resolveOTPExpireMinutes(cfg config.OTPConfig) int {
	if cfg.ExpireMinutes <= 0 {
		return 10
	}
	return cfg.ExpireMinutes
}

func resolveOTPSendInterval(cfg config.OTPConfig) int {
	if cfg.SendIntervalSeconds <= 0 {
		return 60
	}
	return cfg.SendIntervalSeconds
}

func resolveOTPMaxAttempts(cfg config.OTPConfig) int {
	if cfg.MaxAttempts <= 0 {
		return 5
	}
	return cfg.MaxAttempts
}

func resolveOTPLength(cfg config.OTPConfig) int {
	if cfg.Length < 4 || cfg.Length > 10 {
		return 6
	}
	return cfg.Length
}
