package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogPost struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Author    string    `gorm:"type:varchar(100);not null"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text;not null"`
	Excerpt   string    `gorm:"type:text"`
	Image     string    `gorm:"type:varchar(512)"`
	Tags      string    `gorm:"type:text;not null;default:'[]'"`
	Likes     int64     `gorm:"not null;default:0"`
	Comments  int64     `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
