package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PayoutModel struct {
	ID        string  `gorm:"type:uuid;primary_key"`
	UserID    string  `gorm:"type:uuid;not null;index"`
	Amount    float64 `gorm:"type:numeric(12,4);not null"`
	Status    string  `gorm:"type:varchar(20);not null;default:'pending';index"`
	PaidAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PayoutModel) TableName() string {
	return "video_payouts"
}

func (p *PayoutModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type PayoutDetailModel struct {
	ID       string  `gorm:"type:uuid;primary_key"`
	PayoutID string  `gorm:"type:uuid;not null;index"`
	VideoID  string  `gorm:"type:uuid;not null;index"`
	Amount   float64 `gorm:"type:numeric(12,4);not null"`
}

func (PayoutDetailModel) TableName() string {
	return "video_payout_details"
}

func (d *PayoutDetailModel) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}

type PaymentMethodModel struct {
	ID            string `gorm:"type:uuid;primary_key"`
	UserID        string `gorm:"type:uuid;uniqueIndex;not null"`
	Method        string `gorm:"type:varchar(50);not null"`
	AccountName   string `gorm:"not null"`
	AccountNumber string `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (PaymentMethodModel) TableName() string {
	return "payment_methods"
}

func (m *PaymentMethodModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
