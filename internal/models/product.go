package models

import "github.com/shopspring/decimal"

// Product is the products table row.
type Product struct {
	ProductID      string          `db:"product_id"`
	RestaurantName string          `db:"restaurant_name"`
	Name           string          `db:"name"`
	Category       string          `db:"category"`
	Unit           string          `db:"unit"`
	Price          decimal.Decimal `db:"price"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}
