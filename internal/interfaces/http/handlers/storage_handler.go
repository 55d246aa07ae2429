package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/Tharak23/deep-fake/internal/domain/entities"
	domainerrors "github.com/Tharak23/deep-fake/internal/domain/errors"
	"github.com/Tharak23/deep-fake/internal/interfaces/http/middleware"
	"github.com/Tharak23/deep-fake/internal/interfaces/http/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StorageService interface {
	Upload(ctx context.Context, userID uuid.UUID, originalName, mimeType string, content io.Reader, category entities.FileCategory, meta entities.UploadMetadata) (*entities.UploadResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.File, error)
	Download(ctx context.Context, id uuid.UUID) (*entities.DownloadResponse, error)
	Delete(ctx context.Context, callerID uuid.UUID, isAdmin bool, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, category string) ([]*entities.File, error)
}

// StorageHandler handles file storage endpoints
type StorageHandler struct {
	storageUsecase StorageService
	maxUploadSize  int64
}

// NewStorageHandler creates a new storage handler
func NewStorageHandler(storageUsecase StorageService, maxUploadSize int64) *StorageHandler {
	return &StorageHandler{
		storageUsecase: storageUsecase,
		maxUploadSize:  maxUploadSize,
	}
}

// Upload ingests a multipart file with optional metadata fields
// POST /api/v1/storage/upload
func (h *StorageHandler) Upload(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("No file provided"))
		return
	}
	if fileHeader.Size > h.maxUploadSize {
		response.Error(c, domainerrors.NewAppError(http.StatusRequestEntityTooLarge, "File exceeds the upload size limit", domainerrors.ErrInvalidInput))
		return
	}

	category := entities.FileCategory(c.PostForm("type"))
	if !category.IsValid() {
		response.Error(c, domainerrors.BadRequest("Invalid file type"))
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer src.Close()

	meta := entities.UploadMetadata{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}
	// The tags field carries a JSON array, e.g. ["gan","survey"].
	if tags := c.PostForm("tags"); tags != "" {
		if err := json.Unmarshal([]byte(tags), &meta.Tags); err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid tags format"))
			return
		}
	}

	uploaded, err := h.storageUsecase.Upload(
		c.Request.Context(),
		userID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		src,
		category,
		meta,
	)
	if err != nil {
		if err == domainerrors.ErrInvalidInput {
			response.Error(c, domainerrors.BadRequest("Invalid upload"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "File uploaded successfully",
		"file":    uploaded,
	})
}

// GetFile returns file metadata and counts the view
// GET /api/v1/storage/file/:id
func (h *StorageHandler) GetFile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid file ID"))
		return
	}

	file, err := h.storageUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("File not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, file)
}

// DownloadFile counts the download and returns the download location
// GET /api/v1/storage/file/:id/download
func (h *StorageHandler) DownloadFile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid file ID"))
		return
	}

	download, err := h.storageUsecase.Download(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("File not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, download)
}

// DeleteFile removes a file owned by the caller (admins may remove any)
// DELETE /api/v1/storage/file/:id
func (h *StorageHandler) DeleteFile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid file ID"))
		return
	}

	role, _ := middleware.GetUserRole(c)
	isAdmin := role == string(entities.UserRoleAdmin)

	if err := h.storageUsecase.Delete(c.Request.Context(), userID, isAdmin, id); err != nil {
		switch err {
		case domainerrors.ErrNotFound:
			response.Error(c, domainerrors.NotFound("File not found"))
		case domainerrors.ErrForbidden:
			response.Error(c, domainerrors.Forbidden("Only the owner may delete this file"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "file deleted"})
}

// ListFiles lists the caller's files, optionally filtered by category
// GET /api/v1/storage/files?type=papers
func (h *StorageHandler) ListFiles(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	files, err := h.storageUsecase.ListByUser(c.Request.Context(), userID, c.Query("type"))
	if err != nil {
		if err == domainerrors.ErrInvalidInput {
			response.Error(c, domainerrors.BadRequest("Invalid file type"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"files": files})
}
