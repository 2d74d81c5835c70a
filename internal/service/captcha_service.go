package service

import (
	"strings"
	"time"

	"github.com/soukly/soukly/internal/config"
	"github.com/soukly/soukly/internal/constants"

	"github.com/mojocn/base64Captcha"
)

// CaptchaVerifyPayload is the client-supplied captcha answer.
type CaptchaVerifyPayload struct {
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

// CaptchaImageChallenge is an image captcha handed to the client.
type CaptchaImageChallenge struct {
	CaptchaID   string `json:"captcha_id"`
	ImageBase64 string `json:"image_base64"`
}

// CaptchaService gates sensitive endpoints behind an image captcha,
// per-scene. With provider "none" every check passes.
type CaptchaService struct {
	cfg        config.CaptchaConfig
	imageStore base64Captcha.Store
}

// NewCaptchaService creates a captcha service.
func NewCaptchaService(cfg config.CaptchaConfig) *CaptchaService {
	maxStore := cfg.Image.MaxStore
	if maxStore <= 0 {
		maxStore = 10240
	}
	expire := time.Duration(cfg.Image.ExpireSeconds) * time.Second
	if expire <= 0 {
		expire = 5 * time.Minute
	}
	return &CaptchaService{
		cfg:        cfg,
		imageStore: base64Captcha.NewMemoryStore(maxStore, expire),
	}
}

// RequiredForScene reports whether the scene demands a captcha.
func (s *CaptchaService) RequiredForScene(scene string) bool {
	if strings.ToLower(strings.TrimSpace(s.cfg.Provider)) != constants.CaptchaProviderImage {
		return false
	}
	switch scene {
	case constants.CaptchaSceneLogin:
		return s.cfg.Scenes.Login
	case constants.CaptchaSceneSendOTP:
		return s.cfg.Scenes.SendOTP
	default:
		return false
	}
}

// GenerateImageChallenge mints a new image captcha.
func (s *CaptchaService) GenerateImageChallenge() (*CaptchaImageChallenge, error) {
	driver := base64Captcha.NewDriverDigit(
		resolveCaptchaDim(s.cfg.Image.Height, 80),
		resolveCaptchaDim(s.cfg.Image.Width, 240),
		resolveCaptchaDim(s.cfg.Image.Length, 5),
		0.7,
		resolveCaptchaDim(s.cfg.Image.NoiseCount, 2),
	)
	captcha := base64Captcha.NewCaptcha(driver, s.imageStore)
	id, b64, _, err := captcha.Generate()
	if err != nil {
		return nil, err
	}
	return &CaptchaImageChallenge{CaptchaID: id, ImageBase64: b64}, nil
}

// Verify checks the captcha answer for a scene. Scenes that do not
// require a captcha always pass.
func (s *CaptchaService) Verify(scene string, payload CaptchaVerifyPayload) error {
	if !s.RequiredForScene(scene) {
		return nil
	}
	if strings.TrimSpace(payload.CaptchaID) == "" || strings.TrimSpace(payload.CaptchaCode) == "" {
		return ErrCaptchaRequired
	}
	if !s.imageStore.Verify(payload.CaptchaID, strings.TrimSpace(payload.CaptchaCode), true) {
		return ErrCaptchaInvalid
	}
	return nil
}

func resolveCaptchaDim(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}
