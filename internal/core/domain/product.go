package domain

import (
	"errors"
	"time"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product already exists")
	// ErrCategoryRefInvalid signals a write whose category reference does not
	// resolve to an existing category.
	ErrCategoryRefInvalid = errors.New("category reference does not exist")
	// ErrNegativeAmount signals a write with a negative price or stock.
	ErrNegativeAmount = errors.New("price and stock must be non-negative")
	// ErrInvalidID signals an identifier that cannot address any stored record
	// (e.g. malformed ObjectID hex). Treated as not-found at the boundary.
	ErrInvalidID = errors.New("invalid identifier")
)

// Product is a stocked item referencing exactly one category.
// Invariants: price >= 0, stock >= 0, CategoryID resolves at write time.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	CategoryID  string    `json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductDetail is the read-side view of a product with the category
// reference resolved into its display name.
type ProductDetail struct {
	Product
	CategoryName string `json:"category_name"`
}
