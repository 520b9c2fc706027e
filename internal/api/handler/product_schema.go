package handler

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Stock       int     `json:"stock"       validate:"gte=0"`
	CategoryID  string  `json:"category_id" validate:"required"`
}

// updateProductRequest carries a partial update; absent fields stay untouched.
// Negative amounts are rejected here, before any store constraint applies.
type updateProductRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=1"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"       validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock"       validate:"omitempty,gte=0"`
	CategoryID  *string  `json:"category_id" validate:"omitempty,min=1"`
}
