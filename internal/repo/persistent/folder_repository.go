package persistent

import (
	"vidmint/internal/entity"
	"vidmint/internal/model"

	"gorm.io/gorm"
)

type FolderRepository interface {
	Create(folder *entity.Folder) error
	GetByID(id string) (*entity.Folder, error)
	GetOwned(id, userID string) (*entity.Folder, error)
	ListByUser(userID string) ([]*entity.Folder, error)
	ListChildren(parentID string) ([]*entity.Folder, error)
	Update(folder *entity.Folder) error
	ExistsID(id string) (bool, error)
	SiblingNameTaken(userID string, parentID *string, name, excludeID string) (bool, error)
	DeleteReparent(folder *entity.Folder) error
	DeleteCascade(folderIDs, videoIDs []string) error
	ListVideoIDs(folderIDs []string) ([]string, error)
}

type folderRepository struct {
	db *gorm.DB
}

func NewFolderRepository(db *gorm.DB) FolderRepository {
	return &folderRepository{db: db}
}

func (r *folderRepository) Create(folder *entity.Folder) error {
	folderModel := ToFolderModel(folder)
	if err := r.db.Create(folderModel).Error; err != nil {
		return err
	}
	*folder = *ToFolderEntity(folderModel)
	return nil
}

func (r *folderRepository) GetByID(id string) (*entity.Folder, error) {
	var folderModel model.FolderModel
	if err := r.db.Where("id = ?", id).First(&folderModel).Error; err != nil {
		return nil, err
	}
	return ToFolderEntity(&folderModel), nil
}

func (r *folderRepository) GetOwned(id, userID string) (*entity.Folder, error) {
	var folderModel model.FolderModel
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&folderModel).Error; err != nil {
		return nil, err
	}
	return ToFolderEntity(&folderModel), nil
}

func (r *folderRepository) ListByUser(userID string) ([]*entity.Folder, error) {
	var folderModels []model.FolderModel
	if err := r.db.Where("user_id = ?", userID).
		Order("position ASC, created_at ASC").Find(&folderModels).Error; err != nil {
		return nil, err
	}

	folders := make([]*entity.Folder, len(folderModels))
	for i := range folderModels {
		folders[i] = ToFolderEntity(&folderModels[i])
	}
	return folders, nil
}

func (r *folderRepository) ListChildren(parentID string) ([]*entity.Folder, error) {
	var folderModels []model.FolderModel
	if err := r.db.Where("parent_id = ?", parentID).Find(&folderModels).Error; err != nil {
		return nil, err
	}

	folders := make([]*entity.Folder, len(folderModels))
	for i := range folderModels {
		folders[i] = ToFolderEntity(&folderModels[i])
	}
	return folders, nil
}

func (r *folderRepository) Update(folder *entity.Folder) error {
	folderModel := ToFolderModel(folder)
	return r.db.Save(folderModel).Error
}

func (r *folderRepository) ExistsID(id string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.FolderModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *folderRepository) SiblingNameTaken(userID string, parentID *string, name, excludeID string) (bool, error) {
	query := r.db.Model(&model.FolderModel{}).Where("user_id = ? AND name = ?", userID, name)
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteReparent removes the folder after lifting its direct children and
// videos up to the folder's own parent (nil parent means root).
func (r *folderRepository) DeleteReparent(folder *entity.Folder) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.FolderModel{}).Where("parent_id = ?", folder.ID).
			Update("parent_id", folder.ParentID).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.VideoModel{}).Where("folder_id = ?", folder.ID).
			Update("folder_id", folder.ParentID).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", folder.ID).Delete(&model.FolderModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// DeleteCascade removes the given folders and videos along with every row
// hanging off the videos. All-or-nothing.
func (r *folderRepository) DeleteCascade(folderIDs, videoIDs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(videoIDs) > 0 {
			if err := tx.Where("video_id IN ?", videoIDs).Delete(&model.VideoViewModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("video_id IN ?", videoIDs).Delete(&model.PayoutDetailModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", videoIDs).Delete(&model.VideoModel{}).Error; err != nil {
				return err
			}
		}
		if len(folderIDs) > 0 {
			if err := tx.Where("id IN ?", folderIDs).Delete(&model.FolderModel{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *folderRepository) ListVideoIDs(folderIDs []string) ([]string, error) {
	if len(folderIDs) == 0 {
		return nil, nil
	}

	var ids []string
	if err := r.db.Model(&model.VideoModel{}).Where("folder_id IN ?", folderIDs).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
