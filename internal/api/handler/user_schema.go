package handler

// updateUserRequest carries a partial update of the admin-facing user
// resource; absent fields stay untouched.
type updateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8"`
	Role     *string `json:"role"     validate:"omitempty,oneof=user admin"`
}
