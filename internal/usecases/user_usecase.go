package usecases

import (
	"context"
	"strings"

	"github.com/Tharak23/deep-fake/internal/domain/entities"
	domainerrors "github.com/Tharak23/deep-fake/internal/domain/errors"
	"github.com/Tharak23/deep-fake/internal/domain/repositories"
	"github.com/google/uuid"
)

// UserUsecase handles profile updates and the admin user directory
type UserUsecase struct {
	userRepo repositories.UserRepository
	authz    AuthorizationPolicy
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo repositories.UserRepository, authz AuthorizationPolicy) *UserUsecase {
	return &UserUsecase{
		userRepo: userRepo,
		authz:    authz,
	}
}

// ListUsers returns the user directory for admins, newest accounts first,
// optionally filtered by a search term matched against name and email.
func (u *UserUsecase) ListUsers(ctx context.Context, callerID uuid.UUID, callerEmail, search string) ([]*entities.User, error) {
	isAdmin, err := u.authz.IsAdmin(ctx, callerID, callerEmail)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, domainerrors.ErrForbidden
	}

	return u.userRepo.List(ctx, strings.TrimSpace(search))
}

// UpdateProfile updates the caller's mutable profile fields. Role and
// verification state are untouched; only approval changes those.
func (u *UserUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrInvalidInput
	}
	if input.RoadmapProgress < 0 || input.RoadmapProgress > 100 {
		return nil, domainerrors.ErrInvalidInput
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.RoadmapProgress = input.RoadmapProgress
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
