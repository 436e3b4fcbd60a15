package usecase

import (
	"context"
	"time"

	"vidmint/internal/entity"
	"vidmint/internal/repo/persistent"
	"vidmint/pkg/logger"
	"vidmint/pkg/queue"
)

const (
	allocationTimeout = 30 * time.Second
	amountEpsilon     = 1e-9
)

type PayoutUseCase interface {
	RequestPayout(userID string, amount float64) (*entity.Payout, error)
	ListPayouts(userID string, limit, offset int) ([]*entity.Payout, error)
	ListAllPayouts(status entity.PayoutStatus, limit, offset int) ([]*entity.Payout, error)
	Decide(payoutID string, approve bool) (*entity.Payout, error)
	GetPaymentMethod(userID string) (*entity.PaymentMethod, error)
	SetPaymentMethod(userID, method, accountName, accountNumber string) (*entity.PaymentMethod, error)
}

type payoutUseCase struct {
	payoutRepo  persistent.PayoutRepository
	videoRepo   persistent.VideoRepository
	userRepo    persistent.UserRepository
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewPayoutUseCase(
	payoutRepo persistent.PayoutRepository,
	videoRepo persistent.VideoRepository,
	userRepo persistent.UserRepository,
	queueClient *queue.Client,
	logger *logger.Logger,
) PayoutUseCase {
	return &payoutUseCase{
		payoutRepo:  payoutRepo,
		videoRepo:   videoRepo,
		userRepo:    userRepo,
		queueClient: queueClient,
		logger:      logger,
	}
}

// RequestPayout checks the requested amount against the user's unwithdrawn
// balance, sweeps per-video earnings oldest-first into detail rows, and
// records a pending payout. The whole allocation commits in one transaction;
// an oversized request is rejected before any mutation.
func (uc *payoutUseCase) RequestPayout(userID string, amount float64) (*entity.Payout, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, ErrNotFound
	}

	withdrawn, err := uc.videoRepo.SumWithdrawn(userID)
	if err != nil {
		return nil, err
	}
	available := user.TotalEarnings - withdrawn
	if amount > available+amountEpsilon {
		return nil, ErrInsufficientBalance
	}

	videos, err := uc.videoRepo.ListFundable(userID)
	if err != nil {
		return nil, err
	}

	details := allocate(videos, amount)
	if len(details) == 0 {
		return nil, ErrInsufficientBalance
	}

	payout := &entity.Payout{
		UserID: userID,
		Amount: amount,
		Status: entity.PayoutStatusPending,
	}

	ctx, cancel := context.WithTimeout(context.Background(), allocationTimeout)
	defer cancel()

	if err := uc.payoutRepo.CreateWithAllocation(ctx, payout, details); err != nil {
		uc.logger.Error("Failed to allocate payout for user %s: %v", userID, err)
		return nil, err
	}

	payout.Details = details
	return payout, nil
}

// allocate drains each video's banked earnings in strict creation order until
// the requested amount is covered. No proportional split, no randomization.
func allocate(videos []*entity.Video, amount float64) []entity.PayoutDetail {
	remaining := amount
	var details []entity.PayoutDetail

	for _, video := range videos {
		if remaining <= amountEpsilon {
			break
		}

		available := video.Available()
		if available <= amountEpsilon {
			continue
		}

		take := available
		if remaining < take {
			take = remaining
		}

		details = append(details, entity.PayoutDetail{
			VideoID: video.ID,
			Amount:  take,
		})
		remaining -= take
	}

	if remaining > amountEpsilon {
		// The per-video sweep could not cover the request; caller rejects.
		return nil
	}
	return details
}

func (uc *payoutUseCase) ListPayouts(userID string, limit, offset int) ([]*entity.Payout, error) {
	return uc.payoutRepo.ListByUser(userID, limit, offset)
}

func (uc *payoutUseCase) ListAllPayouts(status entity.PayoutStatus, limit, offset int) ([]*entity.Payout, error) {
	return uc.payoutRepo.ListByStatus(status, limit, offset)
}

// Decide settles a pending payout. Approval is terminal; rejection puts every
// detail amount back onto its video. Both outcomes notify the user by mail.
func (uc *payoutUseCase) Decide(payoutID string, approve bool) (*entity.Payout, error) {
	payout, err := uc.payoutRepo.GetByID(payoutID)
	if err != nil {
		return nil, ErrNotFound
	}
	if payout.Status != entity.PayoutStatusPending {
		return nil, ErrAlreadyDecided
	}

	if approve {
		paidAt := time.Now()
		if err := uc.payoutRepo.Approve(payoutID, paidAt); err != nil {
			uc.logger.Error("Failed to approve payout %s: %v", payoutID, err)
			return nil, err
		}
		payout.Status = entity.PayoutStatusApproved
		payout.PaidAt = &paidAt
	} else {
		if err := uc.payoutRepo.RejectWithReversal(payoutID); err != nil {
			uc.logger.Error("Failed to reject payout %s: %v", payoutID, err)
			return nil, err
		}
		payout.Status = entity.PayoutStatusRejected
	}

	uc.notifyDecision(payout)
	return payout, nil
}

func (uc *payoutUseCase) notifyDecision(payout *entity.Payout) {
	if uc.queueClient == nil {
		return
	}

	user, err := uc.userRepo.GetByID(payout.UserID)
	if err != nil {
		uc.logger.Error("Failed to load user %s for payout mail: %v", payout.UserID, err)
		return
	}

	task := map[string]interface{}{
		"type":     queue.TaskPayoutDecision,
		"to":       user.Email,
		"name":     user.FullName,
		"amount":   payout.Amount,
		"status":   string(payout.Status),
		"priority": 6,
	}
	go func() {
		if err := uc.queueClient.PublishEmailTask(task); err != nil {
			uc.logger.Error("[EMAIL QUEUE] Failed to publish payout decision task: %v", err)
		}
	}()
}

func (uc *payoutUseCase) GetPaymentMethod(userID string) (*entity.PaymentMethod, error) {
	method, err := uc.payoutRepo.GetPaymentMethod(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return method, nil
}

func (uc *payoutUseCase) SetPaymentMethod(userID, method, accountName, accountNumber string) (*entity.PaymentMethod, error) {
	pm := &entity.PaymentMethod{
		UserID:        userID,
		Method:        method,
		AccountName:   accountName,
		AccountNumber: accountNumber,
	}
	if err := uc.payoutRepo.UpsertPaymentMethod(pm); err != nil {
		uc.logger.Error("Failed to save payment method: %v", err)
		return nil, err
	}
	return pm, nil
}
