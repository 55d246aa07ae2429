package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// VerificationStatus represents the lifecycle state of a verification request
type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusApproved VerificationStatus = "approved"
	VerificationStatusRejected VerificationStatus = "rejected"
)

// IsValid reports whether s is a known verification status.
func (s VerificationStatus) IsValid() bool {
	switch s {
	case VerificationStatusPending, VerificationStatusApproved, VerificationStatusRejected:
		return true
	}
	return false
}

// ReviewAction represents an admin decision on a verification request
type ReviewAction string

const (
	ReviewActionApprove ReviewAction = "approve"
	ReviewActionReject  ReviewAction = "reject"
)

// VerificationRequest represents one researcher verification submission.
// UserName and UserEmail are snapshots taken at submission time; they are
// not kept in sync with later changes to the user record.
type VerificationRequest struct {
	ID                uuid.UUID          `json:"id"`
	UserID            uuid.UUID          `json:"userId"`
	UserName          string             `json:"userName"`
	UserEmail         string             `json:"userEmail"`
	DateSubmitted     time.Time          `json:"dateSubmitted"`
	ResearchField     string             `json:"researchField"`
	Institution       string             `json:"institution"`
	Position          string             `json:"position"`
	PublicationsCount int                `json:"publicationsCount"`
	Motivation        string             `json:"motivation"`
	PublicationLinks  []string           `json:"publicationLinks"`
	Status            VerificationStatus `json:"status"`
	RoadmapCompleted  bool               `json:"roadmapCompleted"`
	ReviewedBy        null.String        `json:"reviewedBy,omitempty"`
	ReviewDate        null.Time          `json:"reviewDate,omitempty"`
	ReviewNotes       string             `json:"reviewNotes,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

// SubmitVerificationInput represents input for a verification submission
type SubmitVerificationInput struct {
	ResearchField     string   `json:"researchField" binding:"required"`
	Institution       string   `json:"institution" binding:"required"`
	Position          string   `json:"position" binding:"required"`
	PublicationsCount int      `json:"publicationsCount"`
	Motivation        string   `json:"motivation" binding:"required"`
	PublicationLinks  []string `json:"publicationLinks"`
	RoadmapCompleted  bool     `json:"roadmapCompleted"`
}

// ReviewVerificationInput represents an admin review decision
type ReviewVerificationInput struct {
	RequestID string `json:"requestId" binding:"required"`
	Action    string `json:"action" binding:"required"`
	Notes     string `json:"notes"`
}

// VerificationStatusResponse is returned by the status query. Status is
// "none" when the user has never submitted a request.
type VerificationStatusResponse struct {
	Status        string     `json:"status"`
	RequestID     *uuid.UUID `json:"requestId,omitempty"`
	DateSubmitted *time.Time `json:"dateSubmitted,omitempty"`
	ReviewDate    *time.Time `json:"reviewDate,omitempty"`
}
