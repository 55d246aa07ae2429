package entities

import (
	"time"

	"github.com/google/uuid"
)

// FileCategory represents the category of an uploaded file
type FileCategory string

const (
	FileCategoryPapers      FileCategory = "papers"
	FileCategoryDatasets    FileCategory = "datasets"
	FileCategoryExperiments FileCategory = "experiments"
	FileCategoryImages      FileCategory = "images"
)

// IsValid reports whether c is a known file category.
func (c FileCategory) IsValid() bool {
	switch c {
	case FileCategoryPapers, FileCategoryDatasets, FileCategoryExperiments, FileCategoryImages:
		return true
	}
	return false
}

// IsContributionTracked reports whether uploads of this category are
// recorded on the owner's contribution list. Every known category is
// tracked, images included.
func (c FileCategory) IsContributionTracked() bool {
	return c.IsValid()
}

// File represents an uploaded file record
type File struct {
	ID           uuid.UUID    `json:"id"`
	UserID       uuid.UUID    `json:"userId"`
	Name         string       `json:"name"`
	OriginalName string       `json:"originalName"`
	Path         string       `json:"-"`
	URL          string       `json:"url"`
	Category     FileCategory `json:"type"`
	MimeType     string       `json:"mimeType"`
	Size         int64        `json:"size"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Tags         []string     `json:"tags"`
	Views        int64        `json:"views"`
	Downloads    int64        `json:"downloads"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// UploadMetadata holds caller-supplied metadata for an upload
type UploadMetadata struct {
	Title       string
	Description string
	Tags        []string
}

// UploadResponse is the file summary returned after a successful upload
type UploadResponse struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	URL         string       `json:"url"`
	Category    FileCategory `json:"type"`
	Size        int64        `json:"size"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// DownloadResponse carries the URL and original filename for a download
type DownloadResponse struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}
