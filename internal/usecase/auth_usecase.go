package usecase

import (
	"time"

	"vidmint/internal/entity"
	"vidmint/internal/repo/persistent"
	"vidmint/pkg/jwt"
	"vidmint/pkg/logger"
	"vidmint/pkg/queue"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionTTL      = 7 * 24 * time.Hour
	verificationTTL = 24 * time.Hour
)

type AuthUseCase interface {
	Register(fullName, email, password, whatsapp string) (*entity.User, error)
	Login(email, password, userAgent string) (*entity.User, string, error)
	AdminLogin(email, password, userAgent string) (*entity.Admin, string, error)
	Logout(sessionToken string) error
	GetUser(userID string) (*entity.User, error)
	VerifyEmail(token string) error
	ResendVerification(userID string) error
	ListSessions(userID string) ([]*entity.Session, error)
	RevokeSession(sessionID, userID string) error
}

type authUseCase struct {
	userRepo    persistent.UserRepository
	adminRepo   persistent.AdminRepository
	sessionRepo persistent.SessionRepository
	jwtService  *jwt.Service
	queueClient *queue.Client
	logger      *logger.Logger
	baseURL     string
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	adminRepo persistent.AdminRepository,
	sessionRepo persistent.SessionRepository,
	jwtService *jwt.Service,
	queueClient *queue.Client,
	logger *logger.Logger,
	baseURL string,
) AuthUseCase {
	return &authUseCase{
		userRepo:    userRepo,
		adminRepo:   adminRepo,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
		queueClient: queueClient,
		logger:      logger,
		baseURL:     baseURL,
	}
}

func (uc *authUseCase) Register(fullName, email, password, whatsapp string) (*entity.User, error) {
	if _, err := uc.userRepo.GetByEmail(email); err == nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, err
	}

	user := &entity.User{
		FullName: fullName,
		Email:    email,
		Password: string(hashedPassword),
		Whatsapp: whatsapp,
	}
	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, err
	}

	if err := uc.issueVerification(user); err != nil {
		uc.logger.Error("Failed to issue verification token: %v", err)
	}

	user.Password = ""
	return user, nil
}

func (uc *authUseCase) Login(email, password, userAgent string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if user.IsSuspended {
		return nil, "", ErrAccountSuspended
	}

	token, err := uc.openSession(user.ID, entity.AudienceUser, userAgent)
	if err != nil {
		return nil, "", err
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) AdminLogin(email, password, userAgent string) (*entity.Admin, string, error) {
	admin, err := uc.adminRepo.GetByEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := uc.openSession(admin.ID, entity.AudienceAdmin, userAgent)
	if err != nil {
		return nil, "", err
	}

	admin.Password = ""
	return admin, token, nil
}

// openSession creates the server-side session row and wraps its opaque token
// into a signed JWT.
func (uc *authUseCase) openSession(actorID, audience, userAgent string) (string, error) {
	session := &entity.Session{
		ActorID:   actorID,
		Token:     uuid.New().String(),
		Audience:  audience,
		UserAgent: userAgent,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := uc.sessionRepo.Create(session); err != nil {
		uc.logger.Error("Failed to create session: %v", err)
		return "", err
	}

	token, err := uc.jwtService.GenerateToken(actorID, audience, session.Token)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return "", err
	}
	return token, nil
}

func (uc *authUseCase) Logout(sessionToken string) error {
	return uc.sessionRepo.DeleteByToken(sessionToken)
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	user.Password = ""
	return user, nil
}

func (uc *authUseCase) VerifyEmail(token string) error {
	stored, err := uc.userRepo.GetVerificationToken(token)
	if err != nil {
		return ErrTokenExpired
	}
	if time.Now().After(stored.ExpiresAt) {
		return ErrTokenExpired
	}
	return uc.userRepo.ConsumeVerificationToken(token)
}

func (uc *authUseCase) ResendVerification(userID string) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return ErrNotFound
	}
	if user.IsEmailVerified {
		return nil
	}

	if err := uc.userRepo.DeleteVerificationTokens(user.ID); err != nil {
		return err
	}
	return uc.issueVerification(user)
}

func (uc *authUseCase) issueVerification(user *entity.User) error {
	token := &entity.EmailVerificationToken{
		UserID:    user.ID,
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(verificationTTL),
	}
	if err := uc.userRepo.CreateVerificationToken(token); err != nil {
		return err
	}

	if uc.queueClient != nil {
		task := map[string]interface{}{
			"type":     queue.TaskVerificationEmail,
			"to":       user.Email,
			"name":     user.FullName,
			"link":     uc.baseURL + "/api/v1/auth/verify-email?token=" + token.Token,
			"priority": 5,
		}
		go func() {
			if err := uc.queueClient.PublishEmailTask(task); err != nil {
				uc.logger.Error("[EMAIL QUEUE] Failed to publish verification task: %v", err)
			}
		}()
	}

	return nil
}

func (uc *authUseCase) ListSessions(userID string) ([]*entity.Session, error) {
	return uc.sessionRepo.ListByActor(userID)
}

func (uc *authUseCase) RevokeSession(sessionID, userID string) error {
	if err := uc.sessionRepo.DeleteByID(sessionID, userID); err != nil {
		return ErrNotFound
	}
	return nil
}
