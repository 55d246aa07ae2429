package usecases_test

import (
	"context"
	"testing"

	"github.com/Tharak23/deep-fake/internal/domain/entities"
	domainerrors "github.com/Tharak23/deep-fake/internal/domain/errors"
	"github.com/Tharak23/deep-fake/internal/usecases"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validPostInput() *entities.CreateBlogPostInput {
	return &entities.CreateBlogPostInput{
		Title:   "Detecting Face Swaps",
		Content: "Long form content.",
		Excerpt: "Short form.",
		Tags:    []string{"deepfakes"},
	}
}

func TestBlogCreate_Success(t *testing.T) {
	blogRepo := new(MockBlogRepository)
	userRepo := new(MockUserRepository)
	uc := usecases.NewBlogUsecase(blogRepo, userRepo)

	authorID := uuid.New()
	userRepo.On("GetByID", mock.Anything, authorID).Return(&entities.User{
		ID:          authorID,
		Name:        "Dr. Researcher",
		BlogEnabled: true,
	}, nil)
	blogRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *entities.BlogPost) bool {
		return p.AuthorID == authorID && p.Author == "Dr. Researcher" && p.Title == "Detecting Face Swaps"
	})).Return(nil)

	post, err := uc.Create(context.Background(), authorID, validPostInput())
	require.NoError(t, err)
	assert.Equal(t, "Dr. Researcher", post.Author)
	blogRepo.AssertExpectations(t)
}

func TestBlogCreate_Disabled(t *testing.T) {
	blogRepo := new(MockBlogRepository)
	userRepo := new(MockUserRepository)
	uc := usecases.NewBlogUsecase(blogRepo, userRepo)

	authorID := uuid.New()
	userRepo.On("GetByID", mock.Anything, authorID).Return(&entities.User{ID: authorID}, nil)

	_, err := uc.Create(context.Background(), authorID, validPostInput())
	assert.ErrorIs(t, err, domainerrors.ErrBlogDisabled)
	blogRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBlogCreate_Validation(t *testing.T) {
	uc := usecases.NewBlogUsecase(new(MockBlogRepository), new(MockUserRepository))

	input := validPostInput()
	input.Title = "  "
	_, err := uc.Create(context.Background(), uuid.New(), input)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	input = validPostInput()
	input.Content = ""
	_, err = uc.Create(context.Background(), uuid.New(), input)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestBlogList(t *testing.T) {
	blogRepo := new(MockBlogRepository)
	uc := usecases.NewBlogUsecase(blogRepo, new(MockUserRepository))

	blogRepo.On("List", mock.Anything, 10, 0).Return([]*entities.BlogPost{
		{ID: uuid.New(), Title: "A"},
	}, int64(25), nil)

	result, err := uc.List(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Len(t, result.Posts, 1)
	assert.EqualValues(t, 25, result.Pagination.Total)
	assert.Equal(t, 3, result.Pagination.Pages)
}

func TestBlogGetByID(t *testing.T) {
	blogRepo := new(MockBlogRepository)
	uc := usecases.NewBlogUsecase(blogRepo, new(MockUserRepository))
	id := uuid.New()

	blogRepo.On("GetByID", mock.Anything, id).Return(nil, domainerrors.ErrNotFound)
	_, err := uc.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
