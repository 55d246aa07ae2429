package repositories

import (
	"context"

	"github.com/Tharak23/deep-fake/internal/domain/entities"
	"github.com/google/uuid"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	// Promote applies the researcher promotion written on approval: role,
	// verification flags, roadmap level and the profile fields copied from
	// the approved request.
	Promote(ctx context.Context, user *entities.User) error
	List(ctx context.Context, search string) ([]*entities.User, error)
}
