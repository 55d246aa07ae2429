package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/Tharak23/deep-fake/internal/domain/entities"
	domainerrors "github.com/Tharak23/deep-fake/internal/domain/errors"
	"github.com/Tharak23/deep-fake/internal/domain/repositories"
	"github.com/Tharak23/deep-fake/pkg/utils"
	"github.com/google/uuid"
)

// BlogUsecase handles blog post reads and authoring
type BlogUsecase struct {
	blogRepo repositories.BlogRepository
	userRepo repositories.UserRepository
}

// NewBlogUsecase creates a new blog usecase
func NewBlogUsecase(blogRepo repositories.BlogRepository, userRepo repositories.UserRepository) *BlogUsecase {
	return &BlogUsecase{
		blogRepo: blogRepo,
		userRepo: userRepo,
	}
}

// GetByID returns a blog post
func (u *BlogUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.BlogPost, error) {
	return u.blogRepo.GetByID(ctx, id)
}

// BlogListResult carries a page of blog posts
type BlogListResult struct {
	Posts      []*entities.BlogPost
	Pagination utils.PaginationMeta
}

// List returns published posts, newest first
func (u *BlogUsecase) List(ctx context.Context, page, limit int) (*BlogListResult, error) {
	params := utils.GetPaginationParams(page, limit)
	posts, total, err := u.blogRepo.List(ctx, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, err
	}
	return &BlogListResult{
		Posts:      posts,
		Pagination: utils.CalculateMeta(total, params.Page, params.Limit),
	}, nil
}

// Create publishes a new post. Authoring requires the blog_enabled flag,
// which is granted when a verification request is approved.
func (u *BlogUsecase) Create(ctx context.Context, authorID uuid.UUID, input *entities.CreateBlogPostInput) (*entities.BlogPost, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return nil, domainerrors.ErrInvalidInput
	}

	author, err := u.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if !author.BlogEnabled {
		return nil, domainerrors.ErrBlogDisabled
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now()
	post := &entities.BlogPost{
		ID:        utils.GenerateUUIDv7(),
		AuthorID:  author.ID,
		Author:    author.Name,
		Title:     input.Title,
		Content:   input.Content,
		Excerpt:   input.Excerpt,
		Image:     input.Image,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.blogRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}
