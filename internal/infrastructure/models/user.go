package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email            string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name             string     `gorm:"type:varchar(100);not null"`
	PasswordHash     string     `gorm:"type:varchar(255);not null"`
	Role             string     `gorm:"type:varchar(50);not null;default:'user'"`
	IsVerified       bool       `gorm:"not null;default:false"`
	VerificationDate *time.Time `gorm:"type:timestamp"`
	RoadmapProgress  int        `gorm:"not null;default:0"`
	RoadmapLevel     string     `gorm:"type:varchar(20);not null;default:'Beginner'"`
	Institution      string     `gorm:"type:varchar(255)"`
	Position         string     `gorm:"type:varchar(255)"`
	Field            string     `gorm:"type:varchar(255)"`
	BlogEnabled      bool       `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}
