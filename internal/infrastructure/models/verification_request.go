package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VerificationRequest persists one researcher verification submission.
// date_submitted doubles as the sort key for "most recent request".
type VerificationRequest struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID            uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserName          string     `gorm:"type:varchar(100);not null"`
	UserEmail         string     `gorm:"type:varchar(255);not null;index"`
	DateSubmitted     time.Time  `gorm:"not null;index"`
	ResearchField     string     `gorm:"type:varchar(255);not null"`
	Institution       string     `gorm:"type:varchar(255);not null"`
	Position          string     `gorm:"type:varchar(255);not null"`
	PublicationsCount int        `gorm:"not null;default:0"`
	Motivation        string     `gorm:"type:text;not null"`
	PublicationLinks  string     `gorm:"type:text;not null;default:'[]'"`
	Status            string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	RoadmapCompleted  bool       `gorm:"not null;default:false"`
	ReviewedBy        *uuid.UUID `gorm:"type:uuid"`
	ReviewDate        *time.Time `gorm:"type:timestamp"`
	ReviewNotes       string     `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`

	// Associations
	User User `gorm:"foreignKey:UserID"`
}
