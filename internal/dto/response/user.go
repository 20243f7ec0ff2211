package response

import (
	"inventory-backend/internal/data/entity"
)

// UserResponse never carries the password hash.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type UserListResponse struct {
	Status string         `json:"status"`
	Users  []UserResponse `json:"users"`
}

type StatusMessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
}
