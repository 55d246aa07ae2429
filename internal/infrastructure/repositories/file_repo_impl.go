package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Tharak23/deep-fake/internal/domain/entities"
	domainerrors "github.com/Tharak23/deep-fake/internal/domain/errors"
	"github.com/Tharak23/deep-fake/internal/infrastructure/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FileRepository implements file metadata operations
type FileRepository struct {
	db *gorm.DB
}

// NewFileRepository creates a new file repository
func NewFileRepository(db *gorm.DB) *FileRepository {
	return &FileRepository{db: db}
}

// Create creates a new file record
func (r *FileRepository) Create(ctx context.Context, file *entities.File) error {
	tags, err := json.Marshal(file.Tags)
	if err != nil {
		return err
	}

	m := &models.File{
		ID:           file.ID,
		UserID:       file.UserID,
		Name:         file.Name,
		OriginalName: file.OriginalName,
		Path:         file.Path,
		URL:          file.URL,
		Category:     string(file.Category),
		MimeType:     file.MimeType,
		Size:         file.Size,
		Title:        file.Title,
		Description:  file.Description,
		Tags:         string(tags),
		CreatedAt:    file.CreatedAt,
		UpdatedAt:    file.UpdatedAt,
	}

	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a file record by ID
func (r *FileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.File, error) {
	var m models.File
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return fileToEntity(&m), nil
}

// ListByUser lists a user's files, newest first, optionally filtered by category
func (r *FileRepository) ListByUser(ctx context.Context, userID uuid.UUID, category entities.FileCategory) ([]*entities.File, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", string(category))
	}

	var fileModels []models.File
	if err := query.Find(&fileModels).Error; err != nil {
		return nil, err
	}

	files := make([]*entities.File, 0, len(fileModels))
	for i := range fileModels {
		files = append(files, fileToEntity(&fileModels[i]))
	}
	return files, nil
}

// IncrementViews increments the view counter
func (r *FileRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return r.incrementCounter(ctx, id, "views")
}

// IncrementDownloads increments the download counter
func (r *FileRepository) IncrementDownloads(ctx context.Context, id uuid.UUID) error {
	return r.incrementCounter(ctx, id, "downloads")
}

func (r *FileRepository) incrementCounter(ctx context.Context, id uuid.UUID, column string) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.File{}).
		Where("id = ?", id).
		Update(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a file record
func (r *FileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.File{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func fileToEntity(m *models.File) *entities.File {
	var tags []string
	if err := json.Unmarshal([]byte(m.Tags), &tags); err != nil {
		tags = []string{}
	}

	return &entities.File{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		OriginalName: m.OriginalName,
		Path:         m.Path,
		URL:          m.URL,
		Category:     entities.FileCategory(m.Category),
		MimeType:     m.MimeType,
		Size:         m.Size,
		Title:        m.Title,
		Description:  m.Description,
		Tags:         tags,
		Views:        m.Views,
		Downloads:    m.Downloads,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ContributionRepository implements the per-user contribution list
type ContributionRepository struct {
	db *gorm.DB
}

// NewContributionRepository creates a new contribution repository
func NewContributionRepository(db *gorm.DB) *ContributionRepository {
	return &ContributionRepository{db: db}
}

// Append records a file on the user's contribution list for a category
func (r *ContributionRepository) Append(ctx context.Context, userID uuid.UUID, category entities.FileCategory, fileID uuid.UUID) error {
	m := &models.Contribution{
		ID:       uuid.New(),
		UserID:   userID,
		Category: string(category),
		FileID:   fileID,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// Remove pulls a file from the user's contribution list
func (r *ContributionRepository) Remove(ctx context.Context, userID uuid.UUID, category entities.FileCategory, fileID uuid.UUID) error {
	return GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ? AND category = ? AND file_id = ?", userID, string(category), fileID).
		Delete(&models.Contribution{}).Error
}

// ListByUser returns the file IDs contributed by a user in a category
func (r *ContributionRepository) ListByUser(ctx context.Context, userID uuid.UUID, category entities.FileCategory) ([]uuid.UUID, error) {
	var contributionModels []models.Contribution
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ? AND category = ?", userID, string(category)).
		Order("created_at ASC").
		Find(&contributionModels).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(contributionModels))
	for _, m := range contributionModels {
		ids = append(ids, m.FileID)
	}
	return ids, nil
}
