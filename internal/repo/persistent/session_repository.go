package persistent

import (
	"time"

	"vidmint/internal/entity"
	"vidmint/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(session *entity.Session) error
	SessionExists(token, audience string) (bool, error)
	DeleteByToken(token string) error
	DeleteByID(id, actorID string) error
	DeleteByActor(actorID string) error
	ListByActor(actorID string) ([]*entity.Session, error)
	DeleteExpired() error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *entity.Session) error {
	sessionModel := &model.SessionModel{
		ID:        session.ID,
		ActorID:   session.ActorID,
		Token:     session.Token,
		Audience:  session.Audience,
		UserAgent: session.UserAgent,
		ExpiresAt: session.ExpiresAt,
	}
	if sessionModel.ID == "" {
		sessionModel.ID = uuid.New().String()
	}
	if err := r.db.Create(sessionModel).Error; err != nil {
		return err
	}
	*session = *ToSessionEntity(sessionModel)
	return nil
}

// SessionExists is the revocation check behind every authenticated request.
func (r *sessionRepository) SessionExists(token, audience string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.SessionModel{}).
		Where("token = ? AND audience = ? AND expires_at > ?", token, audience, time.Now()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *sessionRepository) DeleteByToken(token string) error {
	return r.db.Where("token = ?", token).Delete(&model.SessionModel{}).Error
}

func (r *sessionRepository) DeleteByID(id, actorID string) error {
	result := r.db.Where("id = ? AND actor_id = ?", id, actorID).Delete(&model.SessionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *sessionRepository) DeleteByActor(actorID string) error {
	return r.db.Where("actor_id = ?", actorID).Delete(&model.SessionModel{}).Error
}

func (r *sessionRepository) ListByActor(actorID string) ([]*entity.Session, error) {
	var sessionModels []model.SessionModel
	if err := r.db.Where("actor_id = ? AND expires_at > ?", actorID, time.Now()).
		Order("created_at DESC").Find(&sessionModels).Error; err != nil {
		return nil, err
	}

	sessions := make([]*entity.Session, len(sessionModels))
	for i := range sessionModels {
		sessions[i] = ToSessionEntity(&sessionModels[i])
	}
	return sessions, nil
}

func (r *sessionRepository) DeleteExpired() error {
	return r.db.Where("expires_at <= ?", time.Now()).Delete(&model.SessionModel{}).Error
}
