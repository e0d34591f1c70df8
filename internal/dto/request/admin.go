package request

// CreateUserRequest shares the registration bounds; unrecognized Role
// values are coerced to USER at the service layer.
type CreateUserRequest struct {
	Name     string  `json:"name" validate:"required,min=20,max=60"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,password"`
	Address  *string `json:"address,omitempty" validate:"omitempty,max=400"`
	Role     string  `json:"role,omitempty"`
}

type CreateStoreRequest struct {
	Name    string `json:"name" validate:"required,max=60"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required,max=400"`
	OwnerID string `json:"owner_id" validate:"required,uuid"`
}
