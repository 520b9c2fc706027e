package ports

import (
	"context"

	"github.com/stockroom/stock-api/internal/core/domain"
)

// CategoryUpdate carries the fields of a partial category update. Nil fields
// are left untouched.
type CategoryUpdate struct {
	Name        *string
	Description *string
}

// CategoryRepository defines category persistence.
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	// Update applies the non-nil fields and returns the refreshed record.
	Update(ctx context.Context, id string, upd CategoryUpdate) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
