package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a buyer account. Exactly one of Email / Phone / OAuth identity is
// required at creation; the others may be attached later.
type User struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	Email         *string        `gorm:"uniqueIndex" json:"email"`
	Phone         *string        `gorm:"uniqueIndex" json:"phone"`
	PasswordHash  string         `gorm:"default:''" json:"-"`
	DisplayName   string         `gorm:"default:''" json:"display_name"`
	Locale        string         `gorm:"default:'fr'" json:"locale"`
	Status        string         `gorm:"default:'active'" json:"status"`
	OAuthProvider *string        `gorm:"uniqueIndex:idx_users_oauth" json:"-"`
	OAuthSubject  *string        `gorm:"uniqueIndex:idx_users_oauth" json:"-"`
	LastLoginAt   *time.Time     `json:"last_login_at"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (User) TableName() string {
	return "users"
}
