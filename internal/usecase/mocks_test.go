package usecase

import (
	"context"
	"time"

	"vidmint/internal/entity"
	"vidmint/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) List(limit, offset int) ([]*entity.User, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) SetSuspended(id string, suspended bool) error {
	args := m.Called(id, suspended)
	return args.Error(0)
}

func (m *MockUserRepository) CreateVerificationToken(token *entity.EmailVerificationToken) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockUserRepository) GetVerificationToken(token string) (*entity.EmailVerificationToken, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.EmailVerificationToken), args.Error(1)
}

func (m *MockUserRepository) ConsumeVerificationToken(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteVerificationTokens(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

// MockVideoRepository is a mock implementation of persistent.VideoRepository
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(video *entity.Video) error {
	args := m.Called(video)
	return args.Error(0)
}

func (m *MockVideoRepository) GetByID(id string) (*entity.Video, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) GetOwned(id, userID string) (*entity.Video, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) ListByUser(userID string, folderID *string, limit, offset int) ([]*entity.Video, error) {
	args := m.Called(userID, folderID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) Update(video *entity.Video) error {
	args := m.Called(video)
	return args.Error(0)
}

func (m *MockVideoRepository) DeleteCascade(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockVideoRepository) IncrementLike(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockVideoRepository) IncrementDislike(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockVideoRepository) ListFundable(userID string) ([]*entity.Video, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) SumWithdrawn(userID string) (float64, error) {
	args := m.Called(userID)
	return args.Get(0).(float64), args.Error(1)
}

var _ persistent.VideoRepository = (*MockVideoRepository)(nil)

// MockFolderRepository is a mock implementation of persistent.FolderRepository
type MockFolderRepository struct {
	mock.Mock
}

func (m *MockFolderRepository) Create(folder *entity.Folder) error {
	args := m.Called(folder)
	return args.Error(0)
}

func (m *MockFolderRepository) GetByID(id string) (*entity.Folder, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Folder), args.Error(1)
}

func (m *MockFolderRepository) GetOwned(id, userID string) (*entity.Folder, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Folder), args.Error(1)
}

func (m *MockFolderRepository) ListByUser(userID string) ([]*entity.Folder, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Folder), args.Error(1)
}

func (m *MockFolderRepository) ListChildren(parentID string) ([]*entity.Folder, error) {
	args := m.Called(parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Folder), args.Error(1)
}

func (m *MockFolderRepository) Update(folder *entity.Folder) error {
	args := m.Called(folder)
	return args.Error(0)
}

func (m *MockFolderRepository) ExistsID(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockFolderRepository) SiblingNameTaken(userID string, parentID *string, name, excludeID string) (bool, error) {
	args := m.Called(userID, parentID, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFolderRepository) DeleteReparent(folder *entity.Folder) error {
	args := m.Called(folder)
	return args.Error(0)
}

func (m *MockFolderRepository) DeleteCascade(folderIDs, videoIDs []string) error {
	args := m.Called(folderIDs, videoIDs)
	return args.Error(0)
}

func (m *MockFolderRepository) ListVideoIDs(folderIDs []string) ([]string, error) {
	args := m.Called(folderIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ persistent.FolderRepository = (*MockFolderRepository)(nil)

// MockPayoutRepository is a mock implementation of persistent.PayoutRepository
type MockPayoutRepository struct {
	mock.Mock
}

func (m *MockPayoutRepository) CreateWithAllocation(ctx context.Context, payout *entity.Payout, details []entity.PayoutDetail) error {
	args := m.Called(ctx, payout, details)
	return args.Error(0)
}

func (m *MockPayoutRepository) GetByID(id string) (*entity.Payout, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Payout), args.Error(1)
}

func (m *MockPayoutRepository) ListByUser(userID string, limit, offset int) ([]*entity.Payout, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Payout), args.Error(1)
}

func (m *MockPayoutRepository) ListByStatus(status entity.PayoutStatus, limit, offset int) ([]*entity.Payout, error) {
	args := m.Called(status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Payout), args.Error(1)
}

func (m *MockPayoutRepository) Approve(id string, paidAt time.Time) error {
	args := m.Called(id, paidAt)
	return args.Error(0)
}

func (m *MockPayoutRepository) RejectWithReversal(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPayoutRepository) GetPaymentMethod(userID string) (*entity.PaymentMethod, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PaymentMethod), args.Error(1)
}

func (m *MockPayoutRepository) UpsertPaymentMethod(method *entity.PaymentMethod) error {
	args := m.Called(method)
	return args.Error(0)
}

var _ persistent.PayoutRepository = (*MockPayoutRepository)(nil)

// MockViewRepository is a mock implementation of persistent.ViewRepository
type MockViewRepository struct {
	mock.Mock
}

func (m *MockViewRepository) HasViewSince(videoID, ip string, since time.Time) (bool, error) {
	args := m.Called(videoID, ip, since)
	return args.Bool(0), args.Error(1)
}

func (m *MockViewRepository) RecordCountedView(view *entity.VideoView, earningsPerView float64, videoOwnerID string) error {
	args := m.Called(view, earningsPerView, videoOwnerID)
	return args.Error(0)
}

func (m *MockViewRepository) ViewsByDay(videoID string, days int) ([]*entity.DailyViews, error) {
	args := m.Called(videoID, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.DailyViews), args.Error(1)
}

func (m *MockViewRepository) ViewsByCountry(videoID string) ([]*entity.CountryViews, error) {
	args := m.Called(videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.CountryViews), args.Error(1)
}

var _ persistent.ViewRepository = (*MockViewRepository)(nil)

// MockSettingsRepository is a mock implementation of persistent.SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get() (*entity.WebSettings, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.WebSettings), args.Error(1)
}

func (m *MockSettingsRepository) UpdateCPM(cpm float64) (*entity.WebSettings, error) {
	args := m.Called(cpm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.WebSettings), args.Error(1)
}

var _ persistent.SettingsRepository = (*MockSettingsRepository)(nil)

// MockSessionRepository is a mock implementation of persistent.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(session *entity.Session) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockSessionRepository) SessionExists(token, audience string) (bool, error) {
	args := m.Called(token, audience)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionRepository) DeleteByToken(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteByID(id, actorID string) error {
	args := m.Called(id, actorID)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteByActor(actorID string) error {
	args := m.Called(actorID)
	return args.Error(0)
}

func (m *MockSessionRepository) ListByActor(actorID string) ([]*entity.Session, error) {
	args := m.Called(actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Session), args.Error(1)
}

func (m *MockSessionRepository) DeleteExpired() error {
	args := m.Called()
	return args.Error(0)
}

var _ persistent.SessionRepository = (*MockSessionRepository)(nil)

// MockAdminRepository is a mock implementation of persistent.AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(admin *entity.Admin) error {
	args := m.Called(admin)
	return args.Error(0)
}

func (m *MockAdminRepository) GetByEmail(email string) (*entity.Admin, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Admin), args.Error(1)
}

func (m *MockAdminRepository) GetByID(id string) (*entity.Admin, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Admin), args.Error(1)
}

var _ persistent.AdminRepository = (*MockAdminRepository)(nil)
