package persistent

import (
	"time"

	"vidmint/internal/entity"
	"vidmint/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *entity.User) error
	GetByEmail(email string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	SetSuspended(id string, suspended bool) error
	CreateVerificationToken(token *entity.EmailVerificationToken) error
	GetVerificationToken(token string) (*entity.EmailVerificationToken, error)
	ConsumeVerificationToken(token string) error
	DeleteVerificationTokens(userID string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := ToUserModel(user)
	if userModel.ID == "" {
		userModel.ID = uuid.New().String()
	}
	if err := r.db.Create(userModel).Error; err != nil {
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) Update(user *entity.User) error {
	userModel := ToUserModel(user)
	return r.db.Save(userModel).Error
}

func (r *userRepository) List(limit, offset int) ([]*entity.User, error) {
	var userModels []model.UserModel
	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entity.User, len(userModels))
	for i := range userModels {
		users[i] = ToUserEntity(&userModels[i])
	}
	return users, nil
}

func (r *userRepository) SetSuspended(id string, suspended bool) error {
	result := r.db.Model(&model.UserModel{}).Where("id = ?", id).Update("is_suspended", suspended)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) CreateVerificationToken(token *entity.EmailVerificationToken) error {
	tokenModel := &model.EmailVerificationTokenModel{
		ID:        token.ID,
		UserID:    token.UserID,
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
	}
	if tokenModel.ID == "" {
		tokenModel.ID = uuid.New().String()
	}
	if err := r.db.Create(tokenModel).Error; err != nil {
		return err
	}
	token.ID = tokenModel.ID
	return nil
}

func (r *userRepository) GetVerificationToken(token string) (*entity.EmailVerificationToken, error) {
	var tokenModel model.EmailVerificationTokenModel
	if err := r.db.Where("token = ?", token).First(&tokenModel).Error; err != nil {
		return nil, err
	}
	return &entity.EmailVerificationToken{
		ID:        tokenModel.ID,
		UserID:    tokenModel.UserID,
		Token:     tokenModel.Token,
		ExpiresAt: tokenModel.ExpiresAt,
		CreatedAt: tokenModel.CreatedAt,
	}, nil
}

// ConsumeVerificationToken marks the owning user verified and removes all of
// their outstanding tokens in one transaction.
func (r *userRepository) ConsumeVerificationToken(token string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var tokenModel model.EmailVerificationTokenModel
		if err := tx.Where("token = ?", token).First(&tokenModel).Error; err != nil {
			return err
		}
		if time.Now().After(tokenModel.ExpiresAt) {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Model(&model.UserModel{}).Where("id = ?", tokenModel.UserID).
			Update("is_email_verified", true).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", tokenModel.UserID).
			Delete(&model.EmailVerificationTokenModel{}).Error
	})
}

func (r *userRepository) DeleteVerificationTokens(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.EmailVerificationTokenModel{}).Error
}
