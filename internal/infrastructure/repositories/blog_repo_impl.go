package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Tharak23/deep-fake/internal/domain/entities"
	domainerrors "github.com/Tharak23/deep-fake/internal/domain/errors"
	"github.com/Tharak23/deep-fake/internal/infrastructure/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogRepository implements blog post data operations
type BlogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

// Create creates a new blog post
func (r *BlogRepository) Create(ctx context.Context, post *entities.BlogPost) error {
	tags, err := json.Marshal(post.Tags)
	if err != nil {
		return err
	}

	m := &models.BlogPost{
		ID:        post.ID,
		AuthorID:  post.AuthorID,
		Author:    post.Author,
		Title:     post.Title,
		Content:   post.Content,
		Excerpt:   post.Excerpt,
		Image:     post.Image,
		Tags:      string(tags),
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}

	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a blog post by ID
func (r *BlogRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.BlogPost, error) {
	var m models.BlogPost
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return blogPostToEntity(&m), nil
}

// List lists blog posts, newest first
func (r *BlogRepository) List(ctx context.Context, limit, offset int) ([]*entities.BlogPost, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.BlogPost{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var postModels []models.BlogPost
	query := db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&postModels).Error; err != nil {
		return nil, 0, err
	}

	posts := make([]*entities.BlogPost, 0, len(postModels))
	for i := range postModels {
		posts = append(posts, blogPostToEntity(&postModels[i]))
	}
	return posts, total, nil
}

func blogPostToEntity(m *models.BlogPost) *entities.BlogPost {
	var tags []string
	if err := json.Unmarshal([]byte(m.Tags), &tags); err != nil {
		tags = []string{}
	}

	return &entities.BlogPost{
		ID:        m.ID,
		AuthorID:  m.AuthorID,
		Author:    m.Author,
		Title:     m.Title,
		Content:   m.Content,
		Excerpt:   m.Excerpt,
		Image:     m.Image,
		Tags:      tags,
		Likes:     m.Likes,
		Comments:  m.Comments,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
