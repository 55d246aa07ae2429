package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Tharak23/deep-fake/internal/domain/entities"
	domainerrors "github.com/Tharak23/deep-fake/internal/domain/errors"
	domainRepos "github.com/Tharak23/deep-fake/internal/domain/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviewUpdateApproved() domainRepos.ReviewUpdate {
	return domainRepos.ReviewUpdate{
		Status:     entities.VerificationStatusApproved,
		ReviewedBy: uuid.New(),
	}
}

func TestUnitOfWork_Commit(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	userRepo := NewUserRepository(db)
	uow := NewUnitOfWork(db)

	user := newTestUser("tx@example.com")
	err := uow.Do(context.Background(), func(txCtx context.Context) error {
		return userRepo.Create(txCtx, user)
	})
	require.NoError(t, err)

	got, err := userRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestUnitOfWork_Rollback(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	userRepo := NewUserRepository(db)
	uow := NewUnitOfWork(db)

	user := newTestUser("rollback@example.com")
	boom := errors.New("boom")
	err := uow.Do(context.Background(), func(txCtx context.Context) error {
		if err := userRepo.Create(txCtx, user); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = userRepo.GetByID(context.Background(), user.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUnitOfWork_ReviewAndPromoteAtomicity(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	createVerificationRequestTable(t, db)
	userRepo := NewUserRepository(db)
	requestRepo := NewVerificationRequestRepository(db)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	user := newTestUser("researcher@example.com")
	require.NoError(t, userRepo.Create(ctx, user))
	req := newTestRequest(user.ID, entities.VerificationStatusPending, time.Now())
	require.NoError(t, requestRepo.Create(ctx, req))

	// Promotion of an unknown user rolls the review back too.
	err := uow.Do(ctx, func(txCtx context.Context) error {
		if err := requestRepo.ApplyReview(txCtx, req.ID, reviewUpdateApproved()); err != nil {
			return err
		}
		ghost := newTestUser("ghost@example.com")
		ghost.ID = uuid.New()
		return userRepo.Promote(txCtx, ghost)
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	got, err := requestRepo.GetByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.VerificationStatusPending, got.Status)
}
