package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Tharak23/deep-fake/internal/domain/entities"
	domainerrors "github.com/Tharak23/deep-fake/internal/domain/errors"
	domainRepos "github.com/Tharak23/deep-fake/internal/domain/repositories"
	"github.com/Tharak23/deep-fake/internal/infrastructure/models"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
)

// VerificationRequestRepository implements verification request data operations
type VerificationRequestRepository struct {
	db *gorm.DB
}

// NewVerificationRequestRepository creates a new verification request repository
func NewVerificationRequestRepository(db *gorm.DB) *VerificationRequestRepository {
	return &VerificationRequestRepository{db: db}
}

// Create creates a new verification request
func (r *VerificationRequestRepository) Create(ctx context.Context, request *entities.VerificationRequest) error {
	links, err := json.Marshal(request.PublicationLinks)
	if err != nil {
		return err
	}

	m := &models.VerificationRequest{
		ID:                request.ID,
		UserID:            request.UserID,
		UserName:          request.UserName,
		UserEmail:         request.UserEmail,
		DateSubmitted:     request.DateSubmitted,
		ResearchField:     request.ResearchField,
		Institution:       request.Institution,
		Position:          request.Position,
		PublicationsCount: request.PublicationsCount,
		Motivation:        request.Motivation,
		PublicationLinks:  string(links),
		Status:            string(request.Status),
		RoadmapCompleted:  request.RoadmapCompleted,
		CreatedAt:         request.CreatedAt,
		UpdatedAt:         request.UpdatedAt,
	}

	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a verification request by ID
func (r *VerificationRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.VerificationRequest, error) {
	var m models.VerificationRequest
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return requestToEntity(&m), nil
}

// GetActiveByUserID returns the user's pending or approved request, if any
func (r *VerificationRequestRepository) GetActiveByUserID(ctx context.Context, userID uuid.UUID) (*entities.VerificationRequest, error) {
	var m models.VerificationRequest
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ? AND status IN ?", userID, []string{
			string(entities.VerificationStatusPending),
			string(entities.VerificationStatusApproved),
		}).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return requestToEntity(&m), nil
}

// GetLatestByUserID returns the most recently submitted request for the user
func (r *VerificationRequestRepository) GetLatestByUserID(ctx context.Context, userID uuid.UUID) (*entities.VerificationRequest, error) {
	var m models.VerificationRequest
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date_submitted DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return requestToEntity(&m), nil
}

// ApplyReview transitions a request out of pending. The WHERE clause on the
// current status makes concurrent double-reviews lose with ErrAlreadyReviewed.
func (r *VerificationRequestRepository) ApplyReview(ctx context.Context, id uuid.UUID, update domainRepos.ReviewUpdate) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	result := db.Model(&models.VerificationRequest{}).
		Where("id = ? AND status = ?", id, string(entities.VerificationStatusPending)).
		Updates(map[string]interface{}{
			"status":       string(update.Status),
			"reviewed_by":  update.ReviewedBy,
			"review_date":  time.Now(),
			"review_notes": update.ReviewNotes,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing request from one already reviewed.
		var count int64
		if err := db.Model(&models.VerificationRequest{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrNotFound
		}
		return domainerrors.ErrAlreadyReviewed
	}
	return nil
}

// List lists verification requests ordered by date_submitted descending
func (r *VerificationRequestRepository) List(ctx context.Context, filter domainRepos.VerificationRequestFilter, limit, offset int) ([]*entities.VerificationRequest, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.VerificationRequest{})

	if filter.Status != "" {
		db = db.Where("status = ?", string(filter.Status))
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requestModels []models.VerificationRequest
	query := db.Order("date_submitted DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&requestModels).Error; err != nil {
		return nil, 0, err
	}

	requests := make([]*entities.VerificationRequest, 0, len(requestModels))
	for i := range requestModels {
		requests = append(requests, requestToEntity(&requestModels[i]))
	}
	return requests, total, nil
}

func requestToEntity(m *models.VerificationRequest) *entities.VerificationRequest {
	var links []string
	if err := json.Unmarshal([]byte(m.PublicationLinks), &links); err != nil {
		links = []string{}
	}

	reviewedBy := null.String{}
	if m.ReviewedBy != nil {
		reviewedBy = null.StringFrom(m.ReviewedBy.String())
	}

	return &entities.VerificationRequest{
		ID:                m.ID,
		UserID:            m.UserID,
		UserName:          m.UserName,
		UserEmail:         m.UserEmail,
		DateSubmitted:     m.DateSubmitted,
		ResearchField:     m.ResearchField,
		Institution:       m.Institution,
		Position:          m.Position,
		PublicationsCount: m.PublicationsCount,
		Motivation:        m.Motivation,
		PublicationLinks:  links,
		Status:            entities.VerificationStatus(m.Status),
		RoadmapCompleted:  m.RoadmapCompleted,
		ReviewedBy:        reviewedBy,
		ReviewDate:        null.TimeFromPtr(m.ReviewDate),
		ReviewNotes:       m.ReviewNotes,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
