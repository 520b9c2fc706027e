package ports

import (
	"context"

	"github.com/stockroom/stock-api/internal/core/domain"
)

// UserUpdate carries the fields of a partial user update. Nil fields are left
// untouched.
type UserUpdate struct {
	Username     *string
	Email        *string
	PasswordHash *string
	Role         *domain.Role
}

// UserRepository defines user persistence for both authentication and the
// admin-facing user resource.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	// Update applies the non-nil fields and returns the refreshed record.
	Update(ctx context.Context, id string, upd UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
