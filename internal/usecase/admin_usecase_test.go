package usecase

import (
	"testing"

	"vidmint/internal/entity"
	"vidmint/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListUsers_BlanksPasswords(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewAdminUseCase(userRepo, new(MockSessionRepository), new(MockSettingsRepository), logger.New())

	userRepo.On("List", 50, 0).Return([]*entity.User{
		{ID: "user-1", Password: "hash-1"},
		{ID: "user-2", Password: "hash-2"},
	}, nil)

	users, err := uc.ListUsers(50, 0)

	assert.NoError(t, err)
	for _, u := range users {
		assert.Empty(t, u.Password)
	}
}

func TestSetUserSuspended_RevokesSessions(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)
	uc := NewAdminUseCase(userRepo, sessionRepo, new(MockSettingsRepository), logger.New())

	userRepo.On("SetSuspended", "user-1", true).Return(nil)
	sessionRepo.On("DeleteByActor", "user-1").Return(nil)

	err := uc.SetUserSuspended("user-1", true)

	assert.NoError(t, err)
	sessionRepo.AssertExpectations(t)
}

func TestSetUserSuspended_UnsuspendKeepsSessions(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)
	uc := NewAdminUseCase(userRepo, sessionRepo, new(MockSettingsRepository), logger.New())

	userRepo.On("SetSuspended", "user-1", false).Return(nil)

	err := uc.SetUserSuspended("user-1", false)

	assert.NoError(t, err)
	sessionRepo.AssertNotCalled(t, "DeleteByActor", mock.Anything)
}

func TestSetUserSuspended_UnknownUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewAdminUseCase(userRepo, new(MockSessionRepository), new(MockSettingsRepository), logger.New())

	userRepo.On("SetSuspended", "ghost", true).Return(assert.AnError)

	err := uc.SetUserSuspended("ghost", true)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateCPM(t *testing.T) {
	settingsRepo := new(MockSettingsRepository)
	uc := NewAdminUseCase(new(MockUserRepository), new(MockSessionRepository), settingsRepo, logger.New())

	settingsRepo.On("UpdateCPM", 7.5).Return(&entity.WebSettings{CPM: 7.5}, nil)

	settings, err := uc.UpdateCPM(7.5)

	assert.NoError(t, err)
	assert.Equal(t, 7.5, settings.CPM)
}
