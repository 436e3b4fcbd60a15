package persistent

import (
	"vidmint/internal/entity"
	"vidmint/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(admin *entity.Admin) error
	GetByEmail(email string) (*entity.Admin, error)
	GetByID(id string) (*entity.Admin, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(admin *entity.Admin) error {
	adminModel := &model.AdminModel{
		ID:       admin.ID,
		Email:    admin.Email,
		Password: admin.Password,
	}
	if adminModel.ID == "" {
		adminModel.ID = uuid.New().String()
	}
	if err := r.db.Create(adminModel).Error; err != nil {
		return err
	}
	*admin = *ToAdminEntity(adminModel)
	return nil
}

func (r *adminRepository) GetByEmail(email string) (*entity.Admin, error) {
	var adminModel model.AdminModel
	if err := r.db.Where("email = ?", email).First(&adminModel).Error; err != nil {
		return nil, err
	}
	return ToAdminEntity(&adminModel), nil
}

func (r *adminRepository) GetByID(id string) (*entity.Admin, error) {
	var adminModel model.AdminModel
	if err := r.db.Where("id = ?", id).First(&adminModel).Error; err != nil {
		return nil, err
	}
	return ToAdminEntity(&adminModel), nil
}
