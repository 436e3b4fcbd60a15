package persistent

import (
	"vidmint/internal/entity"
	"vidmint/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SettingsRepository interface {
	Get() (*entity.WebSettings, error)
	UpdateCPM(cpm float64) (*entity.WebSettings, error)
}

type settingsRepository struct {
	db         *gorm.DB
	defaultCPM float64
}

func NewSettingsRepository(db *gorm.DB, defaultCPM float64) SettingsRepository {
	return &settingsRepository{db: db, defaultCPM: defaultCPM}
}

// Get returns the singleton settings row, creating it with the default CPM on
// first access.
func (r *settingsRepository) Get() (*entity.WebSettings, error) {
	var settingsModel model.WebSettingsModel
	if err := r.db.First(&settingsModel).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			settingsModel = model.WebSettingsModel{
				ID:  uuid.New().String(),
				CPM: r.defaultCPM,
			}
			if err := r.db.Create(&settingsModel).Error; err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}
	return ToWebSettingsEntity(&settingsModel), nil
}

func (r *settingsRepository) UpdateCPM(cpm float64) (*entity.WebSettings, error) {
	settings, err := r.Get()
	if err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.WebSettingsModel{}).Where("id = ?", settings.ID).
		Update("cpm", cpm).Error; err != nil {
		return nil, err
	}

	settings.CPM = cpm
	return settings, nil
}
