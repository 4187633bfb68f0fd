package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the orders table row.
type Order struct {
	OrderID        string          `db:"order_id"`
	RestaurantName string          `db:"restaurant_name"`
	TableLabel     string          `db:"table_label"`
	PaymentMethod  string          `db:"payment_method"`
	Status         string          `db:"status"`
	Total          decimal.Decimal `db:"total"`
	PlacedAt       time.Time       `db:"placed_at"`
	AuditFields
}

// OrderItem is the order_items table row.
type OrderItem struct {
	OrderItemID string          `db:"order_item_id"`
	OrderID     string          `db:"order_id"`
	ProductID   string          `db:"product_id"`
	ProductName string          `db:"product_name"`
	Quantity    decimal.Decimal `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
}
