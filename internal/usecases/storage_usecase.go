package usecases

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/Tharak23/deep-fake/internal/domain/entities"
	domainerrors "github.com/Tharak23/deep-fake/internal/domain/errors"
	"github.com/Tharak23/deep-fake/internal/domain/repositories"
	"github.com/Tharak23/deep-fake/internal/infrastructure/storage"
	"github.com/Tharak23/deep-fake/pkg/crypto"
	"github.com/Tharak23/deep-fake/pkg/utils"
	"github.com/google/uuid"
)

// StorageUsecase handles file ingestion and retrieval
type StorageUsecase struct {
	fileRepo         repositories.FileRepository
	contributionRepo repositories.ContributionRepository
	store            storage.Storage
	publicBaseURL    string
}

// NewStorageUsecase creates a new storage usecase
func NewStorageUsecase(
	fileRepo repositories.FileRepository,
	contributionRepo repositories.ContributionRepository,
	store storage.Storage,
	publicBaseURL string,
) *StorageUsecase {
	return &StorageUsecase{
		fileRepo:         fileRepo,
		contributionRepo: contributionRepo,
		store:            store,
		publicBaseURL:    strings.TrimRight(publicBaseURL, "/"),
	}
}

// UniqueFilename derives a collision-resistant name from the original
// filename, preserving the extension: name-<unix millis>-<8 hex chars>.ext
func UniqueFilename(originalName string) (string, error) {
	ext := path.Ext(originalName)
	base := strings.TrimSuffix(path.Base(originalName), ext)
	suffix, err := crypto.GenerateRandomToken(4)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d-%s%s", base, time.Now().UnixMilli(), suffix, ext), nil
}

// Upload persists the uploaded bytes and records file metadata. Files in
// contribution-tracked categories are appended to the owner's contribution
// list.
func (u *StorageUsecase) Upload(ctx context.Context, userID uuid.UUID, originalName, mimeType string, content io.Reader, category entities.FileCategory, meta entities.UploadMetadata) (*entities.UploadResponse, error) {
	if !category.IsValid() {
		return nil, domainerrors.ErrInvalidInput
	}
	if originalName == "" {
		return nil, domainerrors.ErrInvalidInput
	}

	uniqueName, err := UniqueFilename(originalName)
	if err != nil {
		return nil, err
	}
	relativePath := path.Join(string(category), userID.String(), uniqueName)

	size, err := u.store.Save(ctx, relativePath, content)
	if err != nil {
		return nil, err
	}

	title := meta.Title
	if title == "" {
		title = originalName
	}
	tags := meta.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now()
	file := &entities.File{
		ID:           utils.GenerateUUIDv7(),
		UserID:       userID,
		Name:         uniqueName,
		OriginalName: originalName,
		Path:         relativePath,
		URL:          u.publicBaseURL + "/" + relativePath,
		Category:     category,
		MimeType:     mimeType,
		Size:         size,
		Title:        title,
		Description:  meta.Description,
		Tags:         tags,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.fileRepo.Create(ctx, file); err != nil {
		// The bytes are already on disk; best effort cleanup.
		_ = u.store.Remove(ctx, relativePath)
		return nil, err
	}

	if category.IsContributionTracked() {
		if err := u.contributionRepo.Append(ctx, userID, category, file.ID); err != nil {
			return nil, err
		}
	}

	return &entities.UploadResponse{
		ID:          file.ID,
		Title:       file.Title,
		Description: file.Description,
		URL:         file.URL,
		Category:    file.Category,
		Size:        file.Size,
		CreatedAt:   file.CreatedAt,
	}, nil
}

// GetByID returns file metadata and increments the view counter
func (u *StorageUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.File, error) {
	file, err := u.fileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.fileRepo.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	file.Views++

	return file, nil
}

// Download increments the download counter and returns the URL and the
// original filename.
func (u *StorageUsecase) Download(ctx context.Context, id uuid.UUID) (*entities.DownloadResponse, error) {
	file, err := u.fileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.fileRepo.IncrementDownloads(ctx, id); err != nil {
		return nil, err
	}

	return &entities.DownloadResponse{
		URL:  file.URL,
		Name: file.OriginalName,
	}, nil
}

// Delete removes the stored bytes, the metadata record and the contribution
// entry. Only the owner or an admin may delete; missing bytes on disk are
// tolerated.
func (u *StorageUsecase) Delete(ctx context.Context, callerID uuid.UUID, isAdmin bool, id uuid.UUID) error {
	file, err := u.fileRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if file.UserID != callerID && !isAdmin {
		return domainerrors.ErrForbidden
	}

	if err := u.store.Remove(ctx, file.Path); err != nil {
		return err
	}

	if file.Category.IsContributionTracked() {
		if err := u.contributionRepo.Remove(ctx, file.UserID, file.Category, file.ID); err != nil {
			return err
		}
	}

	return u.fileRepo.Delete(ctx, id)
}

// ListByUser lists a user's files, optionally filtered by category
func (u *StorageUsecase) ListByUser(ctx context.Context, userID uuid.UUID, category string) ([]*entities.File, error) {
	var c entities.FileCategory
	if category != "" {
		c = entities.FileCategory(category)
		if !c.IsValid() {
			return nil, domainerrors.ErrInvalidInput
		}
	}
	return u.fileRepo.ListByUser(ctx, userID, c)
}
