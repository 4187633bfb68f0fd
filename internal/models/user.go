package models

import "time"

// User is the users table row.
type User struct {
	UserID         string `db:"user_id"`
	Username       string `db:"username"`
	PasswordHash   string `db:"password_hash"`
	Name           string `db:"name"`
	Role           string `db:"role"`
	RestaurantName string `db:"restaurant_name"`
	Status         string `db:"status"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
