package persistent

import (
	"time"

	"vidmint/internal/entity"
	"vidmint/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ViewRepository interface {
	HasViewSince(videoID, ip string, since time.Time) (bool, error)
	RecordCountedView(view *entity.VideoView, earningsPerView float64, videoOwnerID string) error
	ViewsByDay(videoID string, days int) ([]*entity.DailyViews, error)
	ViewsByCountry(videoID string) ([]*entity.CountryViews, error)
}

type viewRepository struct {
	db *gorm.DB
}

func NewViewRepository(db *gorm.DB) ViewRepository {
	return &viewRepository{db: db}
}

func (r *viewRepository) HasViewSince(videoID, ip string, since time.Time) (bool, error) {
	var count int64
	if err := r.db.Model(&model.VideoViewModel{}).
		Where("video_id = ? AND ip = ? AND created_at >= ?", videoID, ip, since).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// RecordCountedView appends the view row and applies the CPM credit to the
// video and its owner in one transaction.
func (r *viewRepository) RecordCountedView(view *entity.VideoView, earningsPerView float64, videoOwnerID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		viewModel := &model.VideoViewModel{
			ID:      view.ID,
			VideoID: view.VideoID,
			IP:      view.IP,
			Country: view.Country,
		}
		if viewModel.ID == "" {
			viewModel.ID = uuid.New().String()
		}
		if err := tx.Create(viewModel).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.VideoModel{}).Where("id = ?", view.VideoID).
			Updates(map[string]interface{}{
				"total_views": gorm.Expr("total_views + 1"),
				"earnings":    gorm.Expr("earnings + ?", earningsPerView),
			}).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.UserModel{}).Where("id = ?", videoOwnerID).
			UpdateColumn("total_earnings", gorm.Expr("total_earnings + ?", earningsPerView)).Error; err != nil {
			return err
		}

		view.ID = viewModel.ID
		return nil
	})
}

func (r *viewRepository) ViewsByDay(videoID string, days int) ([]*entity.DailyViews, error) {
	since := time.Now().AddDate(0, 0, -days)

	var rows []entity.DailyViews
	err := r.db.Model(&model.VideoViewModel{}).
		Select("to_char(created_at, 'YYYY-MM-DD') AS date, COUNT(*) AS views").
		Where("video_id = ? AND created_at >= ?", videoID, since).
		Group("date").Order("date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entity.DailyViews, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func (r *viewRepository) ViewsByCountry(videoID string) ([]*entity.CountryViews, error) {
	var rows []entity.CountryViews
	err := r.db.Model(&model.VideoViewModel{}).
		Select("country, COUNT(*) AS views").
		Where("video_id = ?", videoID).
		Group("country").Order("views DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entity.CountryViews, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
