package persistent

import (
	"context"
	"fmt"
	"time"

	"vidmint/internal/entity"
	"vidmint/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PayoutRepository interface {
	CreateWithAllocation(ctx context.Context, payout *entity.Payout, details []entity.PayoutDetail) error
	GetByID(id string) (*entity.Payout, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Payout, error)
	ListByStatus(status entity.PayoutStatus, limit, offset int) ([]*entity.Payout, error)
	Approve(id string, paidAt time.Time) error
	RejectWithReversal(id string) error
	GetPaymentMethod(userID string) (*entity.PaymentMethod, error)
	UpsertPaymentMethod(method *entity.PaymentMethod) error
}

type payoutRepository struct {
	db *gorm.DB
}

func NewPayoutRepository(db *gorm.DB) PayoutRepository {
	return &payoutRepository{db: db}
}

// CreateWithAllocation persists the payout, its detail rows, and the matching
// withdrawn-earnings increments in a single transaction. Either every video
// credited in details gets its withdrawn_earnings bumped and the payout row
// lands, or nothing does.
func (r *payoutRepository) CreateWithAllocation(ctx context.Context, payout *entity.Payout, details []entity.PayoutDetail) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		payoutModel := &model.PayoutModel{
			ID:     payout.ID,
			UserID: payout.UserID,
			Amount: payout.Amount,
			Status: string(entity.PayoutStatusPending),
		}
		if payoutModel.ID == "" {
			payoutModel.ID = uuid.New().String()
		}
		if err := tx.Create(payoutModel).Error; err != nil {
			return err
		}

		detailModels := make([]model.PayoutDetailModel, 0, len(details))
		for _, d := range details {
			result := tx.Model(&model.VideoModel{}).Where("id = ?", d.VideoID).
				UpdateColumn("withdrawn_earnings", gorm.Expr("withdrawn_earnings + ?", d.Amount))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("video %s disappeared during allocation", d.VideoID)
			}

			detailModels = append(detailModels, model.PayoutDetailModel{
				ID:       uuid.New().String(),
				PayoutID: payoutModel.ID,
				VideoID:  d.VideoID,
				Amount:   d.Amount,
			})
		}

		if err := tx.Create(&detailModels).Error; err != nil {
			return err
		}

		payout.ID = payoutModel.ID
		payout.Status = entity.PayoutStatusPending
		return nil
	})
}

func (r *payoutRepository) GetByID(id string) (*entity.Payout, error) {
	var payoutModel model.PayoutModel
	if err := r.db.Where("id = ?", id).First(&payoutModel).Error; err != nil {
		return nil, err
	}

	payout := ToPayoutEntity(&payoutModel)
	details, err := r.listDetails(r.db, id)
	if err != nil {
		return nil, err
	}
	payout.Details = details
	return payout, nil
}

func (r *payoutRepository) ListByUser(userID string, limit, offset int) ([]*entity.Payout, error) {
	var payoutModels []model.PayoutModel
	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&payoutModels).Error; err != nil {
		return nil, err
	}
	return r.attachDetails(payoutModels)
}

func (r *payoutRepository) ListByStatus(status entity.PayoutStatus, limit, offset int) ([]*entity.Payout, error) {
	var payoutModels []model.PayoutModel
	query := r.db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&payoutModels).Error; err != nil {
		return nil, err
	}
	return r.attachDetails(payoutModels)
}

// Approve is a terminal transition: only pending payouts move, and nothing is
// reversed afterwards.
func (r *payoutRepository) Approve(id string, paidAt time.Time) error {
	result := r.db.Model(&model.PayoutModel{}).
		Where("id = ? AND status = ?", id, entity.PayoutStatusPending).
		Updates(map[string]interface{}{
			"status":  string(entity.PayoutStatusApproved),
			"paid_at": paidAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RejectWithReversal puts each detail amount back onto the corresponding
// video's withdrawn_earnings, then marks the payout rejected. All-or-nothing.
func (r *payoutRepository) RejectWithReversal(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var payoutModel model.PayoutModel
		if err := tx.Where("id = ? AND status = ?", id, entity.PayoutStatusPending).
			First(&payoutModel).Error; err != nil {
			return err
		}

		var detailModels []model.PayoutDetailModel
		if err := tx.Where("payout_id = ?", id).Find(&detailModels).Error; err != nil {
			return err
		}

		for _, d := range detailModels {
			if err := tx.Model(&model.VideoModel{}).Where("id = ?", d.VideoID).
				UpdateColumn("withdrawn_earnings", gorm.Expr("withdrawn_earnings - ?", d.Amount)).Error; err != nil {
				return err
			}
		}

		return tx.Model(&model.PayoutModel{}).Where("id = ?", id).
			Update("status", string(entity.PayoutStatusRejected)).Error
	})
}

func (r *payoutRepository) GetPaymentMethod(userID string) (*entity.PaymentMethod, error) {
	var methodModel model.PaymentMethodModel
	if err := r.db.Where("user_id = ?", userID).First(&methodModel).Error; err != nil {
		return nil, err
	}
	return ToPaymentMethodEntity(&methodModel), nil
}

func (r *payoutRepository) UpsertPaymentMethod(method *entity.PaymentMethod) error {
	var existing model.PaymentMethodModel
	err := r.db.Where("user_id = ?", method.UserID).First(&existing).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			methodModel := &model.PaymentMethodModel{
				ID:            uuid.New().String(),
				UserID:        method.UserID,
				Method:        method.Method,
				AccountName:   method.AccountName,
				AccountNumber: method.AccountNumber,
			}
			if err := r.db.Create(methodModel).Error; err != nil {
				return err
			}
			*method = *ToPaymentMethodEntity(methodModel)
			return nil
		}
		return err
	}

	existing.Method = method.Method
	existing.AccountName = method.AccountName
	existing.AccountNumber = method.AccountNumber
	if err := r.db.Save(&existing).Error; err != nil {
		return err
	}
	*method = *ToPaymentMethodEntity(&existing)
	return nil
}

func (r *payoutRepository) listDetails(db *gorm.DB, payoutID string) ([]entity.PayoutDetail, error) {
	var detailModels []model.PayoutDetailModel
	if err := db.Where("payout_id = ?", payoutID).Find(&detailModels).Error; err != nil {
		return nil, err
	}

	details := make([]entity.PayoutDetail, len(detailModels))
	for i := range detailModels {
		details[i] = *ToPayoutDetailEntity(&detailModels[i])
	}
	return details, nil
}

func (r *payoutRepository) attachDetails(payoutModels []model.PayoutModel) ([]*entity.Payout, error) {
	payouts := make([]*entity.Payout, len(payoutModels))
	for i := range payoutModels {
		payouts[i] = ToPayoutEntity(&payoutModels[i])
		details, err := r.listDetails(r.db, payoutModels[i].ID)
		if err != nil {
			return nil, err
		}
		payouts[i].Details = details
	}
	return payouts, nil
}
