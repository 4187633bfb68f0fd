package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
)

// OrderItemRequest is one line of a new order.
type OrderItemRequest struct {
	ProductID string          `json:"productID" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
}

// CreateOrderRequest carries a new order. The total is computed server-side
// from the catalog prices, never trusted from the client.
type CreateOrderRequest struct {
	TableLabel    string             `json:"tableLabel"`
	PaymentMethod string             `json:"paymentMethod" binding:"required,paymethod"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// OrderItemResponse is one line of an order.
type OrderItemResponse struct {
	ProductID   string `json:"productID"`
	ProductName string `json:"productName"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	LineTotal   string `json:"lineTotal"`
}

// OrderResponse is the public shape of an order.
type OrderResponse struct {
	OrderID        string              `json:"orderID"`
	RestaurantName string              `json:"restaurantName"`
	TableLabel     string              `json:"tableLabel,omitempty"`
	PaymentMethod  string              `json:"paymentMethod"`
	Status         string              `json:"status"`
	Total          string              `json:"total"`
	PlacedAt       string              `json:"placedAt"`
	Items          []OrderItemResponse `json:"items"`
}

// ToOrderResponse converts a domain order to its response DTO.
func ToOrderResponse(o *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity.String(),
			UnitPrice:   it.UnitPrice.String(),
			LineTotal:   it.LineTotal().String(),
		}
	}
	return OrderResponse{
		OrderID:        o.OrderID,
		RestaurantName: o.RestaurantName,
		TableLabel:     o.TableLabel,
		PaymentMethod:  string(o.PaymentMethod),
		Status:         string(o.Status),
		Total:          o.Total.String(),
		PlacedAt:       o.PlacedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		Items:          items,
	}
}

// SalesSummaryResponse reports one day's aggregated sales.
type SalesSummaryResponse struct {
	Date       string          `json:"date"`
	CashSales  decimal.Decimal `json:"cashSales"`
	TotalSales decimal.Decimal `json:"totalSales"`
}
