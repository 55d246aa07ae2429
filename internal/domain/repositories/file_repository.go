package repositories

import (
	"context"

	"github.com/Tharak23/deep-fake/internal/domain/entities"
	"github.com/google/uuid"
)

// FileRepository defines file metadata operations
type FileRepository interface {
	Create(ctx context.Context, file *entities.File) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.File, error)
	ListByUser(ctx context.Context, userID uuid.UUID, category entities.FileCategory) ([]*entities.File, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
	IncrementDownloads(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ContributionRepository tracks per-category file contributions per user
type ContributionRepository interface {
	Append(ctx context.Context, userID uuid.UUID, category entities.FileCategory, fileID uuid.UUID) error
	Remove(ctx context.Context, userID uuid.UUID, category entities.FileCategory, fileID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, category entities.FileCategory) ([]uuid.UUID, error)
}
