package usecases

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"percytext.backend/internal/domain/entities"
	domainerrors "percytext.backend/internal/domain/errors"
	"percytext.backend/internal/domain/repositories"
	"percytext.backend/pkg/crypto"
	"percytext.backend/pkg/jwt"
	"percytext.backend/pkg/logger"
	"percytext.backend/pkg/redis"
)

// SessionManager handles server-side session persistence
type SessionManager interface {
	CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo      repositories.UserRepository
	brandRepo     repositories.BrandRepository
	jwtService    *jwt.JWTService
	sessions      SessionManager
	sessionExpiry time.Duration
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	brandRepo repositories.BrandRepository,
	jwtService *jwt.JWTService,
	sessions SessionManager,
	sessionExpiry time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:      userRepo,
		brandRepo:     brandRepo,
		jwtService:    jwtService,
		sessions:      sessions,
		sessionExpiry: sessionExpiry,
	}
}

// SignUp registers a new user and creates their default brand shell
func (u *AuthUsecase) SignUp(ctx context.Context, input *entities.SignUpInput) (*entities.AuthResponse, error) {
	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.Conflict("email already registered")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        input.Email,
		PasswordHash: passwordHash,
		Status:       entities.UserStatusPendingVerification,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Seed a brand shell so onboarding can fill in compliance details later.
	// Required registry fields that are unknown at signup hold TBD markers.
	brand := &entities.Brand{
		UserID:      user.ID,
		DisplayName: input.CompanyName,
		CompanyName: input.CompanyName,
		EIN:         "TBD",
		EntityType:  entities.EntityTypePrivateProfit,
		Vertical:    entities.VerticalTechnology,
		Phone:       "TBD",
		Email:       input.Email,
		Country:     "US",
		Street:      "TBD",
		City:        "TBD",
		State:       "TBD",
		PostalCode:  "TBD",
		Status:      entities.BrandStatusPending,
	}
	if err := u.brandRepo.Create(ctx, brand); err != nil {
		logger.Error(ctx, "failed to create default brand on signup", zap.Error(err))
		return nil, err
	}

	return u.startSession(ctx, user)
}

// SignIn authenticates a user
func (u *AuthUsecase) SignIn(ctx context.Context, input *entities.SignInInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if user.Status != entities.UserStatusActive {
		return nil, domainerrors.ErrAccountNotActive
	}

	return u.startSession(ctx, user)
}

// SignOut destroys the server-side session
func (u *AuthUsecase) SignOut(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return u.sessions.DeleteSession(ctx, sessionID)
}

// VerifyToken validates an access token and loads the user behind it
func (u *AuthUsecase) VerifyToken(ctx context.Context, token string) (*entities.User, error) {
	claims, err := u.jwtService.ValidateToken(token)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}
		return nil, err
	}
	if user.Status != entities.UserStatusActive {
		return nil, domainerrors.ErrUnauthorized
	}
	return user, nil
}

// ResetPassword starts a password reset. The response never reveals whether
// the email exists.
func (u *AuthUsecase) ResetPassword(ctx context.Context, email string) error {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil
		}
		return err
	}

	token, err := crypto.GenerateRandomToken(32)
	if err != nil {
		return err
	}

	user.SessionToken.SetValid(token)
	if err := u.userRepo.Update(ctx, user); err != nil {
		return err
	}

	// TODO: deliver the reset token by email once a mail provider is wired up
	logger.Info(ctx, "password reset token issued", zap.String("userId", user.ID.String()))
	return nil
}

// SignInWithGoogle is not supported; OAuth flows are handled elsewhere
func (u *AuthUsecase) SignInWithGoogle(ctx context.Context) (*entities.AuthResponse, error) {
	return nil, domainerrors.BadRequest("OAuth sign-in is not supported")
}

func (u *AuthUsecase) startSession(ctx context.Context, user *entities.User) (*entities.AuthResponse, error) {
	token, err := u.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	sessionID, err := crypto.GenerateSessionToken()
	if err != nil {
		return nil, err
	}

	data := &redis.SessionData{
		UserID: user.ID.String(),
		Email:  user.Email,
		Token:  token,
	}
	if err := u.sessions.CreateSession(ctx, sessionID, data, u.sessionExpiry); err != nil {
		// session store being down must not block sign-in
		logger.Warn(ctx, "failed to persist session", zap.Error(err))
		sessionID = ""
	}

	return &entities.AuthResponse{
		Token:     token,
		SessionID: sessionID,
		User:      user,
	}, nil
}
