package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type File struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	OriginalName string    `gorm:"type:varchar(255);not null"`
	Path         string    `gorm:"type:varchar(512);not null"`
	URL          string    `gorm:"type:varchar(512);not null"`
	Category     string    `gorm:"type:varchar(50);not null;index"`
	MimeType     string    `gorm:"type:varchar(100)"`
	Size         int64     `gorm:"not null;default:0"`
	Title        string    `gorm:"type:varchar(255)"`
	Description  string    `gorm:"type:text"`
	Tags         string    `gorm:"type:text;not null;default:'[]'"`
	Views        int64     `gorm:"not null;default:0"`
	Downloads    int64     `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// Contribution is one entry of a user's per-category contribution list.
type Contribution struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_contributions_user_category"`
	Category  string    `gorm:"type:varchar(50);not null;index:idx_contributions_user_category"`
	FileID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
}
