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

type BlogService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.BlogPost, error)
	List(ctx context.Context, page, limit int) (*usecases.BlogListResult, error)
	Create(ctx context.Context, authorID uuid.UUID, input *entities.CreateBlogPostInput) (*entities.BlogPost, error)
}

// BlogHandler handles blog endpoints
type BlogHandler struct {
	blogUsecase BlogService
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(blogUsecase BlogService) *BlogHandler {
	return &BlogHandler{blogUsecase: blogUsecase}
}

// ListPosts returns published posts, newest first
// GET /api/v1/blog?page=1&limit=50
func (h *BlogHandler) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	result, err := h.blogUsecase.List(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"posts":      result.Posts,
		"pagination": result.Pagination,
	})
}

// GetPost returns a single post
// GET /api/v1/blog/:id
func (h *BlogHandler) GetPost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid post ID"))
		return
	}

	post, err := h.blogUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Post not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, post)
}

// CreatePost publishes a new post by the authenticated author
// POST /api/v1/blog
func (h *BlogHandler) CreatePost(c *gin.Context) {
	var input entities.CreateBlogPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	post, err := h.blogUsecase.Create(c.Request.Context(), userID, &input)
	if err != nil {
		switch err {
		case domainerrors.ErrInvalidInput:
			response.Error(c, domainerrors.BadRequest("Title and content are required"))
		case domainerrors.ErrNotFound:
			response.Error(c, domainerrors.NotFound("User not found"))
		case domainerrors.ErrBlogDisabled:
			response.Error(c, domainerrors.Forbidden("Blog publishing is not enabled for this account"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusCreated, post)
}
