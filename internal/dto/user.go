package dto

import (
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
)

// CreateUserRequest carries the fields an admin supplies when provisioning a
// staff account.
type CreateUserRequest struct {
	Username       string `json:"username" binding:"required,min=3"`
	Password       string `json:"password" binding:"required,min=8"`
	Name           string `json:"name" binding:"required"`
	Role           string `json:"role" binding:"required,staffrole"`
	RestaurantName string `json:"restaurantName"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Pointers differentiate omitted fields from zero values.
type UpdateUserRequest struct {
	Name   *string `json:"name"`
	Role   *string `json:"role" binding:"omitempty,staffrole"`
	Status *string `json:"status" binding:"omitempty,oneof=active disabled"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// UserResponse is the public shape of a user.
type UserResponse struct {
	UserID         string `json:"userID"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	RestaurantName string `json:"restaurantName"`
	Status         string `json:"status"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:         u.UserID,
		Username:       u.Username,
		Name:           u.Name,
		Role:           string(u.Role),
		RestaurantName: u.RestaurantName,
		Status:         string(u.Status),
	}
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain.User to the list DTO.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: out}
}
