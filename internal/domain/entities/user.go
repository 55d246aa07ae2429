package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleUser               UserRole = "user"
	UserRoleVerifiedResearcher UserRole = "verified_researcher"
	UserRoleAdmin              UserRole = "admin"
)

// RoadmapLevel represents the researcher roadmap level derived from progress
type RoadmapLevel string

const (
	RoadmapLevelBeginner     RoadmapLevel = "Beginner"
	RoadmapLevelIntermediate RoadmapLevel = "Intermediate"
	RoadmapLevelAdvanced     RoadmapLevel = "Advanced"
	RoadmapLevelExpert       RoadmapLevel = "Expert"
)

// RoadmapLevelForProgress maps a roadmap progress value to a level.
// Thresholds: >=90 Expert, >=70 Advanced, >=40 Intermediate, else Beginner.
func RoadmapLevelForProgress(progress int) RoadmapLevel {
	switch {
	case progress >= 90:
		return RoadmapLevelExpert
	case progress >= 70:
		return RoadmapLevelAdvanced
	case progress >= 40:
		return RoadmapLevelIntermediate
	default:
		return RoadmapLevelBeginner
	}
}

// User represents a platform user
type User struct {
	ID               uuid.UUID    `json:"id"`
	Email            string       `json:"email"`
	Name             string       `json:"name"`
	PasswordHash     string       `json:"-"`
	Role             UserRole     `json:"role"`
	IsVerified       bool         `json:"isVerified"`
	VerificationDate null.Time    `json:"verificationDate,omitempty"`
	RoadmapProgress  int          `json:"roadmapProgress"`
	RoadmapLevel     RoadmapLevel `json:"roadmapLevel"`
	Institution      string       `json:"institution,omitempty"`
	Position         string       `json:"position,omitempty"`
	Field            string       `json:"field,omitempty"`
	BlogEnabled      bool         `json:"blogEnabled"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

// RegisterInput represents input for user registration
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginInput represents input for login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileInput represents input for a profile update
type UpdateProfileInput struct {
	Name            string `json:"name" binding:"required,min=2,max=100"`
	RoadmapProgress int    `json:"roadmapProgress" binding:"min=0,max=100"`
}

// AuthResponse represents a successful authentication response
type AuthResponse struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	SessionID    string `json:"sessionId"`
}
