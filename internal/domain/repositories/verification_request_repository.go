package repositories

import (
	"context"

	"github.com/Tharak23/deep-fake/internal/domain/entities"
	"github.com/google/uuid"
)

// VerificationRequestFilter narrows listing queries
type VerificationRequestFilter struct {
	Status entities.VerificationStatus
}

// ReviewUpdate carries the fields written by an admin review
type ReviewUpdate struct {
	Status      entities.VerificationStatus
	ReviewedBy  uuid.UUID
	ReviewNotes string
}

// VerificationRequestRepository defines verification request data operations
type VerificationRequestRepository interface {
	Create(ctx context.Context, request *entities.VerificationRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.VerificationRequest, error)
	// GetActiveByUserID returns the user's request with status pending or
	// approved, or ErrNotFound when none exists.
	GetActiveByUserID(ctx context.Context, userID uuid.UUID) (*entities.VerificationRequest, error)
	// GetLatestByUserID returns the most recently submitted request for the
	// user, ordered by date_submitted descending.
	GetLatestByUserID(ctx context.Context, userID uuid.UUID) (*entities.VerificationRequest, error)
	// ApplyReview transitions a request out of pending. The update is
	// conditional on the current status still being pending; it returns
	// ErrAlreadyReviewed when the request was reviewed concurrently and
	// ErrNotFound when no such request exists.
	ApplyReview(ctx context.Context, id uuid.UUID, update ReviewUpdate) error
	List(ctx context.Context, filter VerificationRequestFilter, limit, offset int) ([]*entities.VerificationRequest, int64, error)
}
