package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionModel struct {
	ID        string    `gorm:"type:uuid;primary_key"`
	ActorID   string    `gorm:"type:uuid;not null;index"`
	Token     string    `gorm:"uniqueIndex;not null"`
	Audience  string    `gorm:"type:varchar(10);not null;index"`
	UserAgent string
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

func (SessionModel) TableName() string {
	return "sessions"
}

func (s *SessionModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

type AdminModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AdminModel) TableName() string {
	return "admins"
}

func (a *AdminModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
