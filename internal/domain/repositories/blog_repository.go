package repositories

import (
	"context"

	"github.com/Tharak23/deep-fake/internal/domain/entities"
	"github.com/google/uuid"
)

// BlogRepository defines blog post data operations
type BlogRepository interface {
	Create(ctx context.Context, post *entities.BlogPost) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.BlogPost, error)
	List(ctx context.Context, limit, offset int) ([]*entities.BlogPost, int64, error)
}
