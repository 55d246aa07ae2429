package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/Tharak23/deep-fake/internal/domain/entities"
	domainerrors "github.com/Tharak23/deep-fake/internal/domain/errors"
	"github.com/Tharak23/deep-fake/internal/domain/repositories"
	"github.com/Tharak23/deep-fake/pkg/utils"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// VerificationUsecase handles the researcher verification workflow
type VerificationUsecase struct {
	requestRepo repositories.VerificationRequestRepository
	userRepo    repositories.UserRepository
	authz       AuthorizationPolicy
	uow         repositories.UnitOfWork
}

// NewVerificationUsecase creates a new verification usecase
func NewVerificationUsecase(
	requestRepo repositories.VerificationRequestRepository,
	userRepo repositories.UserRepository,
	authz AuthorizationPolicy,
	uow repositories.UnitOfWork,
) *VerificationUsecase {
	return &VerificationUsecase{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		authz:       authz,
		uow:         uow,
	}
}

// SubmitResult carries the outcome of a submission
type SubmitResult struct {
	RequestID uuid.UUID
	// ExistingStatus is set when the submission was rejected because an
	// active request already exists.
	ExistingStatus entities.VerificationStatus
}

// Submit creates a new verification request for the user. The duplicate
// guard and the insert run inside one transaction so two concurrent
// submissions for the same identity cannot both pass the check.
func (u *VerificationUsecase) Submit(ctx context.Context, userID uuid.UUID, input *entities.SubmitVerificationInput) (*SubmitResult, error) {
	if strings.TrimSpace(input.ResearchField) == "" ||
		strings.TrimSpace(input.Institution) == "" ||
		strings.TrimSpace(input.Position) == "" ||
		strings.TrimSpace(input.Motivation) == "" {
		return nil, domainerrors.ErrInvalidInput
	}
	if input.PublicationsCount < 0 {
		return nil, domainerrors.ErrInvalidInput
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	links := input.PublicationLinks
	if links == nil {
		links = []string{}
	}

	result := &SubmitResult{}
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		existing, err := u.requestRepo.GetActiveByUserID(txCtx, user.ID)
		if err != nil && err != domainerrors.ErrNotFound {
			return err
		}
		if existing != nil {
			result.ExistingStatus = existing.Status
			return domainerrors.ErrDuplicateRequest
		}

		now := time.Now()
		request := &entities.VerificationRequest{
			ID:                utils.GenerateUUIDv7(),
			UserID:            user.ID,
			UserName:          user.Name,
			UserEmail:         user.Email,
			DateSubmitted:     now,
			ResearchField:     input.ResearchField,
			Institution:       input.Institution,
			Position:          input.Position,
			PublicationsCount: input.PublicationsCount,
			Motivation:        input.Motivation,
			PublicationLinks:  links,
			Status:            entities.VerificationStatusPending,
			RoadmapCompleted:  input.RoadmapCompleted,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if err := u.requestRepo.Create(txCtx, request); err != nil {
			return err
		}
		result.RequestID = request.ID
		return nil
	})
	if err != nil {
		return result, err
	}
	return result, nil
}

// GetStatus returns the status of the user's most recent verification
// request, or "none" when the user has never submitted one.
func (u *VerificationUsecase) GetStatus(ctx context.Context, userID uuid.UUID) (*entities.VerificationStatusResponse, error) {
	request, err := u.requestRepo.GetLatestByUserID(ctx, userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return &entities.VerificationStatusResponse{Status: "none"}, nil
		}
		return nil, err
	}

	resp := &entities.VerificationStatusResponse{
		Status:        string(request.Status),
		RequestID:     &request.ID,
		DateSubmitted: &request.DateSubmitted,
	}
	if request.ReviewDate.Valid {
		reviewDate := request.ReviewDate.Time
		resp.ReviewDate = &reviewDate
	}
	return resp, nil
}

// ReviewResult carries the outcome of a review
type ReviewResult struct {
	RequestID uuid.UUID
	Status    entities.VerificationStatus
}

// Review approves or rejects a pending verification request. On approval
// the request update and the user promotion are applied inside one
// transaction, and the status transition is conditional on the request
// still being pending.
func (u *VerificationUsecase) Review(ctx context.Context, reviewerID uuid.UUID, reviewerEmail string, input *entities.ReviewVerificationInput) (*ReviewResult, error) {
	isAdmin, err := u.authz.IsAdmin(ctx, reviewerID, reviewerEmail)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, domainerrors.ErrForbidden
	}

	action := entities.ReviewAction(input.Action)
	if action != entities.ReviewActionApprove && action != entities.ReviewActionReject {
		return nil, domainerrors.ErrInvalidInput
	}

	requestID, err := uuid.Parse(input.RequestID)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput
	}

	request, err := u.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, request.UserID)
	if err != nil {
		return nil, err
	}

	newStatus := entities.VerificationStatusRejected
	if action == entities.ReviewActionApprove {
		newStatus = entities.VerificationStatusApproved
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		update := repositories.ReviewUpdate{
			Status:      newStatus,
			ReviewedBy:  reviewerID,
			ReviewNotes: input.Notes,
		}
		if err := u.requestRepo.ApplyReview(txCtx, requestID, update); err != nil {
			return err
		}

		if action != entities.ReviewActionApprove {
			return nil
		}

		user.Role = entities.UserRoleVerifiedResearcher
		user.IsVerified = true
		user.VerificationDate = null.TimeFrom(time.Now())
		user.RoadmapLevel = entities.RoadmapLevelForProgress(user.RoadmapProgress)
		user.BlogEnabled = true
		user.Institution = request.Institution
		user.Position = request.Position
		user.Field = request.ResearchField
		return u.userRepo.Promote(txCtx, user)
	})
	if err != nil {
		return nil, err
	}

	return &ReviewResult{
		RequestID: requestID,
		Status:    newStatus,
	}, nil
}

// ListResult carries a page of verification requests
type ListResult struct {
	Requests   []*entities.VerificationRequest
	Pagination utils.PaginationMeta
}

// List returns verification requests for admin review, newest submissions
// first, optionally filtered by status.
func (u *VerificationUsecase) List(ctx context.Context, callerID uuid.UUID, callerEmail, status string, page, limit int) (*ListResult, error) {
	isAdmin, err := u.authz.IsAdmin(ctx, callerID, callerEmail)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, domainerrors.ErrForbidden
	}

	filter := repositories.VerificationRequestFilter{}
	if status != "" {
		s := entities.VerificationStatus(status)
		if !s.IsValid() {
			return nil, domainerrors.ErrInvalidInput
		}
		filter.Status = s
	}

	params := utils.GetPaginationParams(page, limit)
	requests, total, err := u.requestRepo.List(ctx, filter, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Requests:   requests,
		Pagination: utils.CalculateMeta(total, params.Page, params.Limit),
	}, nil
}
