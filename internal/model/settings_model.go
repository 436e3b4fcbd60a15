package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WebSettingsModel struct {
	ID        string  `gorm:"type:uuid;primary_key"`
	CPM       float64 `gorm:"type:numeric(8,4);not null;default:1"`
	UpdatedAt time.Time
}

func (WebSettingsModel) TableName() string {
	return "web_settings"
}

func (s *WebSettingsModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
