package repository

import (
	"errors"
	"time"

	"github.com/soukly/soukly/internal/models"

	"gorm.io/gorm"
)

// PhoneVerifyCodeRepository is the phone verification code data access interface.
type PhoneVerifyCodeRepository interface {
	Create(code *models.PhoneVerifyCode) error
	GetLatest(phone, purpose string) (*models.PhoneVerifyCode, error)
	MarkVerified(id uint, verifiedAt time.Time) error
	IncrementAttempt(id uint) error
}

// GormPhoneVerifyCodeRepository is the GORM implementation.
type GormPhoneVerifyCodeRepository struct {
	db *gorm.DB
}

// NewPhoneVerifyCodeRepository creates a phone verification code repository.
func NewPhoneVerifyCodeRepository(db *gorm.DB) *GormPhoneVerifyCodeRepository {
	return &GormPhoneVerifyCodeRepository{db: db}
}

// Create inserts a code record.
func (r *GormPhoneVerifyCodeRepository) Create(code *models.PhoneVerifyCode) error {
	return r.db.Create(code).Error
}

// GetLatest returns the most recent code for a phone and purpose.
func (r *GormPhoneVerifyCodeRepository) GetLatest(phone, purpose string) (*models.PhoneVerifyCode, error) {
	var record models.PhoneVerifyCode
	if err := r.db.Where("phone = ? AND purpose = ?", phone, purpose).
		Order("sent_at desc, id desc").
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// MarkVerified marks a code as used.
func (r *GormPhoneVerifyCodeRepository) MarkVerified(id uint, verifiedAt time.Time) error {
	return r.db.Model(&models.PhoneVerifyCode{}).
		Where("id = ?", id).
		Update("verified_at", verifiedAt).Error
}

// IncrementAttempt bumps the failed attempt counter.
func (r *GormPhoneVerifyCodeRepository) IncrementAttempt(id uint) error {
	return r.db.Model(&models.PhoneVerifyCode{}).
		Where("id = ?", id).
		UpdateColumn("attempt_count", gorm.Expr("attempt_count + 1")).Error
}
