package handlers

import (
	"context"
	"net/http"

	"github.com/Tharak23/deep-fake/internal/domain/entities"
	domainerrors "github.com/Tharak23/deep-fake/internal/domain/errors"
	"github.com/Tharak23/deep-fake/internal/interfaces/http/middleware"
	"github.com/Tharak23/deep-fake/internal/interfaces/http/response"
	"github.com/Tharak23/deep-fake/internal/usecases"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VerificationService interface {
	Submit(ctx context.Context, userID uuid.UUID, input *entities.SubmitVerificationInput) (*usecases.SubmitResult, error)
	GetStatus(ctx context.Context, userID uuid.UUID) (*entities.VerificationStatusResponse, error)
}

// VerificationHandler handles the researcher-facing verification endpoints
type VerificationHandler struct {
	verificationUsecase VerificationService
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(verificationUsecase VerificationService) *VerificationHandler {
	return &VerificationHandler{verificationUsecase: verificationUsecase}
}

// Submit creates a verification request for the authenticated user
// POST /api/v1/user/request-verification
func (h *VerificationHandler) Submit(c *gin.Context) {
	var input entities.SubmitVerificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	result, err := h.verificationUsecase.Submit(c.Request.Context(), userID, &input)
	if err != nil {
		switch err {
		case domainerrors.ErrDuplicateRequest:
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "You already have a verification request",
				"status": result.ExistingStatus,
			})
		case domainerrors.ErrInvalidInput:
			response.Error(c, domainerrors.BadRequest("All fields are required"))
		case domainerrors.ErrNotFound:
			response.Error(c, domainerrors.NotFound("User not found"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":   "Verification request submitted successfully",
		"requestId": result.RequestID,
		"status":    entities.VerificationStatusPending,
	})
}

// GetStatus returns the status of the caller's latest verification request
// GET /api/v1/user/request-verification
func (h *VerificationHandler) GetStatus(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	status, err := h.verificationUsecase.GetStatus(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, status)
}
