package dto

import (
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
)

// RestaurantStaffResponse is one restaurant's bucket of the directory.
type RestaurantStaffResponse struct {
	Admin     *UserResponse  `json:"admin"`
	Employees []UserResponse `json:"employees"`
}

// DirectoryResponse maps restaurant names to their staff buckets.
type DirectoryResponse struct {
	Restaurants map[string]RestaurantStaffResponse `json:"restaurants"`
}

// SetRestaurantStatusRequest toggles every account of one restaurant.
type SetRestaurantStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active disabled"`
}

// ToDirectoryResponse converts the domain projection to its DTO.
func ToDirectoryResponse(dir map[string]domain.RestaurantStaff) DirectoryResponse {
	out := make(map[string]RestaurantStaffResponse, len(dir))
	for name, staff := range dir {
		bucket := RestaurantStaffResponse{Employees: make([]UserResponse, len(staff.Employees))}
		if staff.Admin != nil {
			admin := ToUserResponse(staff.Admin)
			bucket.Admin = &admin
		}
		for i := range staff.Employees {
			bucket.Employees[i] = ToUserResponse(&staff.Employees[i])
		}
		out[name] = bucket
	}
	return DirectoryResponse{Restaurants: out}
}
