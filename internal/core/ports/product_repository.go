package ports

import (
	"context"

	"github.com/stockroom/stock-api/internal/core/domain"
)

// ProductUpdate carries the fields of a partial product update. Nil fields are
// left untouched.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	CategoryID  *string
}

// ProductRepository defines product persistence.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	// Update applies the non-nil fields and returns the refreshed record.
	Update(ctx context.Context, id string, upd ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
