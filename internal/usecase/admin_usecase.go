package usecase

import (
	"vidmint/internal/entity"
	"vidmint/internal/repo/persistent"
	"vidmint/pkg/logger"
)

type AdminUseCase interface {
	ListUsers(limit, offset int) ([]*entity.User, error)
	SetUserSuspended(userID string, suspended bool) error
	GetSettings() (*entity.WebSettings, error)
	UpdateCPM(cpm float64) (*entity.WebSettings, error)
}

type adminUseCase struct {
	userRepo     persistent.UserRepository
	sessionRepo  persistent.SessionRepository
	settingsRepo persistent.SettingsRepository
	logger       *logger.Logger
}

func NewAdminUseCase(
	userRepo persistent.UserRepository,
	sessionRepo persistent.SessionRepository,
	settingsRepo persistent.SettingsRepository,
	logger *logger.Logger,
) AdminUseCase {
	return &adminUseCase{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

func (uc *adminUseCase) ListUsers(limit, offset int) ([]*entity.User, error) {
	users, err := uc.userRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		u.Password = ""
	}
	return users, nil
}

// SetUserSuspended flips the suspension flag. Suspending also revokes every
// live session so the user is locked out immediately, not at next login.
func (uc *adminUseCase) SetUserSuspended(userID string, suspended bool) error {
	if err := uc.userRepo.SetSuspended(userID, suspended); err != nil {
		return ErrNotFound
	}
	if suspended {
		if err := uc.sessionRepo.DeleteByActor(userID); err != nil {
			uc.logger.Error("Failed to revoke sessions for suspended user %s: %v", userID, err)
		}
	}
	return nil
}

func (uc *adminUseCase) GetSettings() (*entity.WebSettings, error) {
	return uc.settingsRepo.Get()
}

func (uc *adminUseCase) UpdateCPM(cpm float64) (*entity.WebSettings, error) {
	settings, err := uc.settingsRepo.UpdateCPM(cpm)
	if err != nil {
		uc.logger.Error("Failed to update CPM: %v", err)
		return nil, err
	}
	return settings, nil
}
