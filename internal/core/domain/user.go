package domain

import "time"

// UserStatus indicates whether a user account may sign in.
type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusDisabled UserStatus = "disabled"
)

// User represents a staff member's profile. Tenancy is carried by RestaurantName:
// the restaurant is a grouping key on the user record, not a first-class entity.
type User struct {
	UserID         string     `json:"userID"` // Primary Key (UUID)
	Username       string     `json:"username"`
	PasswordHash   string     `json:"-"`
	Name           string     `json:"name"` // Display name, recorded on journal entries
	Role           Role       `json:"role"`
	RestaurantName string     `json:"restaurantName"`
	Status         UserStatus `json:"status"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"` // Used for soft delete
}

// IsActive reports whether the account may authenticate and act.
func (u *User) IsActive() bool {
	return u.Status == StatusActive && u.DeletedAt == nil
}
