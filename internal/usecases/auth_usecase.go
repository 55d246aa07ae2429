package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/Tharak23/deep-fake/internal/domain/entities"
	domainerrors "github.com/Tharak23/deep-fake/internal/domain/errors"
	"github.com/Tharak23/deep-fake/internal/domain/repositories"
	"github.com/Tharak23/deep-fake/pkg/crypto"
	"github.com/Tharak23/deep-fake/pkg/jwt"
	"github.com/Tharak23/deep-fake/pkg/redis"
	"github.com/Tharak23/deep-fake/pkg/utils"
	"github.com/google/uuid"
)

// AuthUsecase handles registration, login and session lifecycle
type AuthUsecase struct {
	userRepo      repositories.UserRepository
	jwtService    *jwt.JWTService
	sessionStore  *redis.SessionStore
	sessionExpiry time.Duration
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	jwtService *jwt.JWTService,
	sessionStore *redis.SessionStore,
	sessionExpiry time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:      userRepo,
		jwtService:    jwtService,
		sessionStore:  sessionStore,
		sessionExpiry: sessionExpiry,
	}
}

// Register creates a new user account
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := u.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrAlreadyExists
	} else if err != domainerrors.ErrNotFound {
		return nil, err
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entities.User{
		ID:           utils.GenerateUUIDv7(),
		Email:        email,
		Name:         input.Name,
		PasswordHash: hash,
		Role:         entities.UserRoleUser,
		RoadmapLevel: entities.RoadmapLevelBeginner,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials, issues a token pair and creates a session
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	pair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	sessionID, err := crypto.GenerateSessionID()
	if err != nil {
		return nil, err
	}

	err = u.sessionStore.CreateSession(ctx, sessionID, &redis.SessionData{
		UserID:       user.ID.String(),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, u.sessionExpiry)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		SessionID:    sessionID,
	}, nil
}

// Logout deletes the session
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return domainerrors.ErrInvalidInput
	}
	return u.sessionStore.DeleteSession(ctx, sessionID)
}

// GetMe returns the authenticated user's record
func (u *AuthUsecase) GetMe(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}
