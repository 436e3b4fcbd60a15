package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoModel struct {
	ID                string  `gorm:"type:uuid;primary_key"`
	ExternalID        string  `gorm:"not null;index"`
	UserID            string  `gorm:"type:uuid;not null;index"`
	FolderID          *string `gorm:"type:varchar(32);index"`
	Title             string  `gorm:"not null"`
	Earnings          float64 `gorm:"type:numeric(12,4);default:0"`
	WithdrawnEarnings float64 `gorm:"type:numeric(12,4);default:0"`
	TotalViews        int64   `gorm:"default:0"`
	TotalLikes        int64   `gorm:"default:0"`
	TotalDislikes     int64   `gorm:"default:0"`
	ThumbnailURL      string
	CreatedAt         time.Time `gorm:"index"`
	UpdatedAt         time.Time
}

func (VideoModel) TableName() string {
	return "videos"
}

func (v *VideoModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}

type VideoViewModel struct {
	ID        string    `gorm:"type:uuid;primary_key"`
	VideoID   string    `gorm:"type:uuid;not null;index:idx_video_views_video_created"`
	IP        string    `gorm:"type:varchar(45);not null;index"`
	Country   string    `gorm:"type:varchar(2)"`
	CreatedAt time.Time `gorm:"index:idx_video_views_video_created"`
}

func (VideoViewModel) TableName() string {
	return "video_views"
}

func (v *VideoViewModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
