package ports

import (
	"context"

	"github.com/stockroom/stock-api/internal/core/domain"
)

// UpdateUserInput carries a partial user update. A non-nil Password is
// re-hashed by the service before it reaches the store.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
	Role     *domain.Role
}

// UserService exposes the admin-facing user resource.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Remove(ctx context.Context, id string) error
}
