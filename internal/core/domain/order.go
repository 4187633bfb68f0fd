package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how an order was settled.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// OrderStatus indicates the order lifecycle position.
type OrderStatus string

const (
	OrderOpen      OrderStatus = "open"
	OrderPaid      OrderStatus = "paid"
	OrderCancelled OrderStatus = "cancelled"
)

// Order is one customer order. Total is computed server-side from its lines.
type Order struct {
	OrderID        string          `json:"orderID"` // Primary Key (UUID)
	RestaurantName string          `json:"restaurantName"`
	TableLabel     string          `json:"tableLabel,omitempty"`
	Items          []OrderItem     `json:"items,omitempty"`
	PaymentMethod  PaymentMethod   `json:"paymentMethod"`
	Status         OrderStatus     `json:"status"`
	Total          decimal.Decimal `json:"total"`
	PlacedAt       time.Time       `json:"placedAt"`
	AuditFields
}

// OrderItem is one line of an order.
type OrderItem struct {
	OrderItemID string          `json:"orderItemID"` // Primary Key (UUID)
	OrderID     string          `json:"orderID"`
	ProductID   string          `json:"productID"`
	ProductName string          `json:"productName"` // Denormalized for display and history
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// LineTotal returns quantity * unit price.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}
