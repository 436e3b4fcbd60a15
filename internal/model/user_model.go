package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID              string    `gorm:"type:uuid;primary_key"`
	FullName        string    `gorm:"not null"`
	Email           string    `gorm:"uniqueIndex;not null"`
	Password        string    `gorm:"not null"`
	Whatsapp        string    `gorm:"type:varchar(32)"`
	TotalEarnings   float64   `gorm:"type:numeric(12,4);default:0"`
	IsSuspended     bool      `gorm:"default:false"`
	IsEmailVerified bool      `gorm:"default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

type EmailVerificationTokenModel struct {
	ID        string    `gorm:"type:uuid;primary_key"`
	UserID    string    `gorm:"type:uuid;not null;index"`
	Token     string    `gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

func (EmailVerificationTokenModel) TableName() string {
	return "email_verification_tokens"
}

func (t *EmailVerificationTokenModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
