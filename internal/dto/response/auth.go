package response

import (
	"store-rating/internal/data/entity"
)

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type LoginResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
}

// UserInfo is the identity block returned on login; the password hash
// never leaves the server
type UserInfo struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  entity.UserRole `json:"role"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Helper converter
func LoginToResponse(user *entity.User, token string) *LoginResponse {
	return &LoginResponse{
		Message: "Login successful.",
		Token:   token,
		User: UserInfo{
			ID:    user.ID.String(),
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	}
}
