package handlers

import (
	"context"
	"net/http"

	"github.com/Tharak23/deep-fake/internal/domain/entities"
	domainerrors "github.com/Tharak23/deep-fake/internal/domain/errors"
	"github.com/Tharak23/deep-fake/internal/interfaces/http/middleware"
	"github.com/Tharak23/deep-fake/internal/interfaces/http/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserService interface {
	ListUsers(ctx context.Context, callerID uuid.UUID, callerEmail, search string) ([]*entities.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.User, error)
}

// UserHandler handles the user directory and profile endpoints
type UserHandler struct {
	userUsecase UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUsecase UserService) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// ListUsers lists platform users for admins, with optional search
// GET /api/v1/users?search=
func (h *UserHandler) ListUsers(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}
	email, _ := middleware.GetUserEmail(c)

	users, err := h.userUsecase.ListUsers(c.Request.Context(), userID, email, c.Query("search"))
	if err != nil {
		if err == domainerrors.ErrForbidden {
			response.Error(c, domainerrors.Forbidden("Admin access required"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"users": users})
}

// UpdateProfile updates the caller's name and roadmap progress
// PUT /api/v1/user/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var input entities.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	user, err := h.userUsecase.UpdateProfile(c.Request.Context(), userID, &input)
	if err != nil {
		switch err {
		case domainerrors.ErrInvalidInput:
			response.Error(c, domainerrors.BadRequest("Invalid profile fields"))
		case domainerrors.ErrNotFound:
			response.Error(c, domainerrors.NotFound("User not found"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}
