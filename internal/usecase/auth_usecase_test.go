package usecase

import (
	"testing"
	"time"

	"vidmint/internal/entity"
	"vidmint/pkg/jwt"
	"vidmint/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUseCase(userRepo *MockUserRepository, adminRepo *MockAdminRepository, sessionRepo *MockSessionRepository) AuthUseCase {
	return NewAuthUseCase(
		userRepo,
		adminRepo,
		sessionRepo,
		jwt.NewService("test-secret"),
		nil,
		logger.New(),
		"http://localhost:8080",
	)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestRegister_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUseCase(userRepo, new(MockAdminRepository), new(MockSessionRepository))

	userRepo.On("GetByEmail", "new@example.com").Return(nil, assert.AnError)
	userRepo.On("Create", mock.AnythingOfType("*entity.User")).Return(nil)
	userRepo.On("CreateVerificationToken", mock.AnythingOfType("*entity.EmailVerificationToken")).Return(nil)

	user, err := uc.Register("New User", "new@example.com", "password123", "+62812345")

	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Empty(t, user.Password)
	userRepo.AssertExpectations(t)
}

func TestRegister_EmailTaken(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUseCase(userRepo, new(MockAdminRepository), new(MockSessionRepository))

	userRepo.On("GetByEmail", "taken@example.com").Return(&entity.User{ID: "user-1"}, nil)

	_, err := uc.Register("Someone", "taken@example.com", "password123", "")

	assert.ErrorIs(t, err, ErrEmailTaken)
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)
	uc := newAuthUseCase(userRepo, new(MockAdminRepository), sessionRepo)

	userRepo.On("GetByEmail", "user@example.com").Return(&entity.User{
		ID:       "user-1",
		Email:    "user@example.com",
		Password: hashPassword(t, "password123"),
	}, nil)
	sessionRepo.On("Create", mock.AnythingOfType("*entity.Session")).Return(nil)

	user, token, err := uc.Login("user@example.com", "password123", "test-agent")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Empty(t, user.Password)
	sessionRepo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)
	uc := newAuthUseCase(userRepo, new(MockAdminRepository), sessionRepo)

	userRepo.On("GetByEmail", "user@example.com").Return(&entity.User{
		ID:       "user-1",
		Password: hashPassword(t, "password123"),
	}, nil)

	_, _, err := uc.Login("user@example.com", "wrong", "test-agent")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	sessionRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLogin_SuspendedAccount(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)
	uc := newAuthUseCase(userRepo, new(MockAdminRepository), sessionRepo)

	userRepo.On("GetByEmail", "user@example.com").Return(&entity.User{
		ID:          "user-1",
		Password:    hashPassword(t, "password123"),
		IsSuspended: true,
	}, nil)

	_, _, err := uc.Login("user@example.com", "password123", "test-agent")

	assert.ErrorIs(t, err, ErrAccountSuspended)
	sessionRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAdminLogin_Success(t *testing.T) {
	adminRepo := new(MockAdminRepository)
	sessionRepo := new(MockSessionRepository)
	uc := newAuthUseCase(new(MockUserRepository), adminRepo, sessionRepo)

	adminRepo.On("GetByEmail", "admin@example.com").Return(&entity.Admin{
		ID:       "admin-1",
		Password: hashPassword(t, "admin-pass"),
	}, nil)
	sessionRepo.On("Create", mock.MatchedBy(func(s *entity.Session) bool {
		return s.Audience == entity.AudienceAdmin
	})).Return(nil)

	admin, token, err := uc.AdminLogin("admin@example.com", "admin-pass", "test-agent")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Empty(t, admin.Password)
	sessionRepo.AssertExpectations(t)
}

func TestVerifyEmail_ExpiredToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUseCase(userRepo, new(MockAdminRepository), new(MockSessionRepository))

	userRepo.On("GetVerificationToken", "stale").Return(&entity.EmailVerificationToken{
		Token:     "stale",
		ExpiresAt: time.Now().Add(-time.Hour),
	}, nil)

	err := uc.VerifyEmail("stale")

	assert.ErrorIs(t, err, ErrTokenExpired)
	userRepo.AssertNotCalled(t, "ConsumeVerificationToken", mock.Anything)
}

func TestVerifyEmail_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUseCase(userRepo, new(MockAdminRepository), new(MockSessionRepository))

	userRepo.On("GetVerificationToken", "fresh").Return(&entity.EmailVerificationToken{
		Token:     "fresh",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	userRepo.On("ConsumeVerificationToken", "fresh").Return(nil)

	err := uc.VerifyEmail("fresh")

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestRevokeSession_NotOwned(t *testing.T) {
	sessionRepo := new(MockSessionRepository)
	uc := newAuthUseCase(new(MockUserRepository), new(MockAdminRepository), sessionRepo)

	sessionRepo.On("DeleteByID", "session-1", "user-2").Return(assert.AnError)

	err := uc.RevokeSession("session-1", "user-2")

	assert.ErrorIs(t, err, ErrNotFound)
}
