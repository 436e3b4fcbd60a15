package persistent

import (
	"vidmint/internal/entity"
	"vidmint/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoRepository interface {
	Create(video *entity.Video) error
	GetByID(id string) (*entity.Video, error)
	GetOwned(id, userID string) (*entity.Video, error)
	ListByUser(userID string, folderID *string, limit, offset int) ([]*entity.Video, error)
	Update(video *entity.Video) error
	DeleteCascade(id string) error
	IncrementLike(id string) error
	IncrementDislike(id string) error
	ListFundable(userID string) ([]*entity.Video, error)
	SumWithdrawn(userID string) (float64, error)
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(video *entity.Video) error {
	videoModel := ToVideoModel(video)
	if videoModel.ID == "" {
		videoModel.ID = uuid.New().String()
	}
	if err := r.db.Create(videoModel).Error; err != nil {
		return err
	}
	*video = *ToVideoEntity(videoModel)
	return nil
}

func (r *videoRepository) GetByID(id string) (*entity.Video, error) {
	var videoModel model.VideoModel
	if err := r.db.Where("id = ?", id).First(&videoModel).Error; err != nil {
		return nil, err
	}
	return ToVideoEntity(&videoModel), nil
}

func (r *videoRepository) GetOwned(id, userID string) (*entity.Video, error) {
	var videoModel model.VideoModel
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&videoModel).Error; err != nil {
		return nil, err
	}
	return ToVideoEntity(&videoModel), nil
}

func (r *videoRepository) ListByUser(userID string, folderID *string, limit, offset int) ([]*entity.Video, error) {
	var videoModels []model.VideoModel
	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if folderID != nil {
		if *folderID == "" {
			query = query.Where("folder_id IS NULL")
		} else {
			query = query.Where("folder_id = ?", *folderID)
		}
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&videoModels).Error; err != nil {
		return nil, err
	}

	videos := make([]*entity.Video, len(videoModels))
	for i := range videoModels {
		videos[i] = ToVideoEntity(&videoModels[i])
	}
	return videos, nil
}

func (r *videoRepository) Update(video *entity.Video) error {
	videoModel := ToVideoModel(video)
	return r.db.Save(videoModel).Error
}

// DeleteCascade removes the video together with its view log and payout detail
// rows in one transaction.
func (r *videoRepository) DeleteCascade(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("video_id = ?", id).Delete(&model.VideoViewModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&model.PayoutDetailModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.VideoModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *videoRepository) IncrementLike(id string) error {
	result := r.db.Model(&model.VideoModel{}).Where("id = ?", id).
		UpdateColumn("total_likes", gorm.Expr("total_likes + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *videoRepository) IncrementDislike(id string) error {
	result := r.db.Model(&model.VideoModel{}).Where("id = ?", id).
		UpdateColumn("total_dislikes", gorm.Expr("total_dislikes + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListFundable returns the user's videos with banked earnings, oldest first.
// The ordering is the payout allocator's drain order.
func (r *videoRepository) ListFundable(userID string) ([]*entity.Video, error) {
	var videoModels []model.VideoModel
	if err := r.db.Where("user_id = ? AND earnings > 0", userID).
		Order("created_at ASC").Find(&videoModels).Error; err != nil {
		return nil, err
	}

	videos := make([]*entity.Video, len(videoModels))
	for i := range videoModels {
		videos[i] = ToVideoEntity(&videoModels[i])
	}
	return videos, nil
}

func (r *videoRepository) SumWithdrawn(userID string) (float64, error) {
	var sum float64
	err := r.db.Model(&model.VideoModel{}).Where("user_id = ?", userID).
		Select("COALESCE(SUM(withdrawn_earnings), 0)").Scan(&sum).Error
	return sum, err
}
