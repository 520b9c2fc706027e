package handler

type createCategoryRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"omitempty"`
}

// updateCategoryRequest carries a partial update; absent fields stay untouched.
type updateCategoryRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1"`
	Description *string `json:"description"`
}
