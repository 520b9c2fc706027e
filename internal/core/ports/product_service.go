package ports

import (
	"context"

	"github.com/stockroom/stock-api/internal/core/domain"
)

// CreateProductInput carries the data needed to create a product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	CategoryID  string
}

// UpdateProductInput carries a partial product update.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	CategoryID  *string
}

// ProductService exposes product CRUD operations. Read operations resolve the
// category reference into its display name.
type ProductService interface {
	List(ctx context.Context) ([]domain.ProductDetail, error)
	GetByID(ctx context.Context, id string) (*domain.ProductDetail, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	Remove(ctx context.Context, id string) error
}
