package domain

import "github.com/shopspring/decimal"

// Product is a sellable catalog entry for one restaurant.
type Product struct {
	ProductID      string          `json:"productID"` // Primary Key (UUID)
	RestaurantName string          `json:"restaurantName"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Unit           string          `json:"unit"`
	Price          decimal.Decimal `json:"price"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}
