package usecases

import (
	"context"
	"strings"

	"github.com/Tharak23/deep-fake/internal/domain/entities"
	domainerrors "github.com/Tharak23/deep-fake/internal/domain/errors"
	"github.com/Tharak23/deep-fake/internal/domain/repositories"
	"github.com/google/uuid"
)

// AuthorizationPolicy decides whether an identity holds the admin
// capability. It is a capability gate, not a role hierarchy: admin does not
// imply verified_researcher and vice versa.
type AuthorizationPolicy interface {
	IsAdmin(ctx context.Context, userID uuid.UUID, email string) (bool, error)
}

// AdminPolicy grants admin to identities whose email is on a configured
// static allow-list, or whose persisted role is admin. The two sources are
// checked independently.
type AdminPolicy struct {
	allowedEmails map[string]struct{}
	userRepo      repositories.UserRepository
}

// NewAdminPolicy creates an admin policy from a static email allow-list and
// the user directory.
func NewAdminPolicy(allowedEmails []string, userRepo repositories.UserRepository) *AdminPolicy {
	allowed := make(map[string]struct{}, len(allowedEmails))
	for _, email := range allowedEmails {
		allowed[strings.ToLower(strings.TrimSpace(email))] = struct{}{}
	}
	return &AdminPolicy{
		allowedEmails: allowed,
		userRepo:      userRepo,
	}
}

// IsAdmin reports whether the identity holds the admin capability
func (p *AdminPolicy) IsAdmin(ctx context.Context, userID uuid.UUID, email string) (bool, error) {
	if _, ok := p.allowedEmails[strings.ToLower(email)]; ok {
		return true, nil
	}

	user, err := p.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return false, nil
		}
		return false, err
	}
	return user.Role == entities.UserRoleAdmin, nil
}
