package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Tharak23/deep-fake/internal/domain/entities"
	domainerrors "github.com/Tharak23/deep-fake/internal/domain/errors"
	"github.com/Tharak23/deep-fake/internal/interfaces/http/middleware"
	"github.com/Tharak23/deep-fake/internal/interfaces/http/response"
	"github.com/Tharak23/deep-fake/internal/usecases"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminVerificationService interface {
	List(ctx context.Context, callerID uuid.UUID, callerEmail, status string, page, limit int) (*usecases.ListResult, error)
	Review(ctx context.Context, reviewerID uuid.UUID, reviewerEmail string, input *entities.ReviewVerificationInput) (*usecases.ReviewResult, error)
}

// AdminHandler handles admin review endpoints
type AdminHandler struct {
	verificationUsecase AdminVerificationService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(verificationUsecase AdminVerificationService) *AdminHandler {
	return &AdminHandler{verificationUsecase: verificationUsecase}
}

// ListVerificationRequests lists verification requests, newest first
// GET /api/v1/verification-requests?status=pending&page=1&limit=50
func (h *AdminHandler) ListVerificationRequests(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}
	email, _ := middleware.GetUserEmail(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	status := c.Query("status")

	result, err := h.verificationUsecase.List(c.Request.Context(), userID, email, status, page, limit)
	if err != nil {
		switch err {
		case domainerrors.ErrForbidden:
			response.Error(c, domainerrors.Forbidden("Admin access required"))
		case domainerrors.ErrInvalidInput:
			response.Error(c, domainerrors.BadRequest("Invalid status filter"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"requests":   result.Requests,
		"pagination": result.Pagination,
	})
}

// ReviewVerificationRequest approves or rejects a pending request
// POST /api/v1/verification-requests
func (h *AdminHandler) ReviewVerificationRequest(c *gin.Context) {
	var input entities.ReviewVerificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}
	email, _ := middleware.GetUserEmail(c)

	result, err := h.verificationUsecase.Review(c.Request.Context(), userID, email, &input)
	if err != nil {
		switch err {
		case domainerrors.ErrForbidden:
			response.Error(c, domainerrors.Forbidden("Admin access required"))
		case domainerrors.ErrInvalidInput:
			response.Error(c, domainerrors.BadRequest("Invalid request ID or action"))
		case domainerrors.ErrNotFound:
			response.Error(c, domainerrors.NotFound("Verification request not found"))
		case domainerrors.ErrAlreadyReviewed:
			response.Error(c, domainerrors.NewAppError(http.StatusConflict, "Request has already been reviewed", err))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":   "Verification request " + string(result.Status),
		"requestId": result.RequestID,
		"status":    result.Status,
	})
}
