package ports

import (
	"context"

	"github.com/sesamelabs/identity-service/internal/core/domain"
)

// UpdateUserInput is the raw update request before policy filtering.
// Empty strings mean "not provided".
type UpdateUserInput struct {
	Username string
	Password string
	Role     string
}

type UserService interface {
	Profile(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, caller *domain.SessionClaims, targetID string, input UpdateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
