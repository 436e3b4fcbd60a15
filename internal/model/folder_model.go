package model

import "time"

// FolderModel ids are random slugs generated in the folder usecase, so there
// is no uuid BeforeCreate hook here.
type FolderModel struct {
	ID        string  `gorm:"type:varchar(32);primary_key"`
	UserID    string  `gorm:"type:uuid;not null;index"`
	ParentID  *string `gorm:"type:varchar(32);index"`
	Name      string  `gorm:"not null"`
	Color     string  `gorm:"type:varchar(16)"`
	Position  int     `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (FolderModel) TableName() string {
	return "folders"
}
