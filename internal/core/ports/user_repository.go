package ports

import (
	"context"

	"github.com/sesamelabs/identity-service/internal/core/domain"
)

// UserUpdate carries the fields an update may change. Nil pointers mean
// "leave unchanged"; Role is pre-filtered by the access policy before it
// reaches the repository.
type UserUpdate struct {
	Username     *string
	PasswordHash *string
	Role         *string
}

// IsEmpty reports whether the update would change nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.PasswordHash == nil && u.Role == nil
}

// UserRepository defines the interface for identity persistence. The store
// enforces username uniqueness; Create and Update return
// domain.ErrUserExists on a collision.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
