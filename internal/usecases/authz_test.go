package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Tharak23/deep-fake/internal/domain/entities"
	domainerrors "github.com/Tharak23/deep-fake/internal/domain/errors"
	"github.com/Tharak23/deep-fake/internal/usecases"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminPolicy_AllowListHit(t *testing.T) {
	userRepo := new(MockUserRepository)
	policy := usecases.NewAdminPolicy([]string{" Admin@Lab.org ", "root@lab.org"}, userRepo)

	isAdmin, err := policy.IsAdmin(context.Background(), uuid.New(), "admin@LAB.org")
	require.NoError(t, err)
	assert.True(t, isAdmin)
	// Allow-list hits never touch the directory.
	userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestAdminPolicy_PersistedRole(t *testing.T) {
	userRepo := new(MockUserRepository)
	policy := usecases.NewAdminPolicy(nil, userRepo)
	userID := uuid.New()

	userRepo.On("GetByID", mock.Anything, userID).Return(&entities.User{
		ID:   userID,
		Role: entities.UserRoleAdmin,
	}, nil)

	isAdmin, err := policy.IsAdmin(context.Background(), userID, "someone@lab.org")
	require.NoError(t, err)
	assert.True(t, isAdmin)
}

func TestAdminPolicy_RegularUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	policy := usecases.NewAdminPolicy([]string{"admin@lab.org"}, userRepo)
	userID := uuid.New()

	userRepo.On("GetByID", mock.Anything, userID).Return(&entities.User{
		ID:   userID,
		Role: entities.UserRoleVerifiedResearcher,
	}, nil)

	isAdmin, err := policy.IsAdmin(context.Background(), userID, "researcher@lab.org")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestAdminPolicy_UnknownUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	policy := usecases.NewAdminPolicy(nil, userRepo)
	userID := uuid.New()

	userRepo.On("GetByID", mock.Anything, userID).Return(nil, domainerrors.ErrNotFound)

	isAdmin, err := policy.IsAdmin(context.Background(), userID, "ghost@lab.org")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestAdminPolicy_DirectoryError(t *testing.T) {
	userRepo := new(MockUserRepository)
	policy := usecases.NewAdminPolicy(nil, userRepo)
	userID := uuid.New()
	boom := errors.New("db down")

	userRepo.On("GetByID", mock.Anything, userID).Return(nil, boom)

	isAdmin, err := policy.IsAdmin(context.Background(), userID, "x@lab.org")
	assert.ErrorIs(t, err, boom)
	assert.False(t, isAdmin)
}
