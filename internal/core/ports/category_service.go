package ports

import (
	"context"

	"github.com/stockroom/stock-api/internal/core/domain"
)

// CreateCategoryInput carries the data needed to create a category.
type CreateCategoryInput struct {
	Name        string
	Description string
}

// UpdateCategoryInput carries a partial category update.
type UpdateCategoryInput struct {
	Name        *string
	Description *string
}

// CategoryService exposes category CRUD operations.
type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id string, input UpdateCategoryInput) (*domain.Category, error)
	Remove(ctx context.Context, id string) error
}
