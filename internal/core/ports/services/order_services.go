package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
	"github.com/tableauchef/tableauchef_backend/internal/dto"
)

// SalesSummarySvc provides the read-only sales figures the register session
// manager treats as injected input.
type SalesSummarySvc interface {
	CashSalesForDay(ctx context.Context, restaurantName string, day time.Time) (decimal.Decimal, error)
	TotalSalesForDay(ctx context.Context, restaurantName string, day time.Time) (decimal.Decimal, error)
}

// OrderSvcFacade combines order entry with the sales aggregation it feeds.
type OrderSvcFacade interface {
	SalesSummarySvc
	CreateOrder(ctx context.Context, actorUserID string, req dto.CreateOrderRequest) (*domain.Order, error)
	GetOrderByID(ctx context.Context, actorUserID string, orderID string) (*domain.Order, error)
	ListOrders(ctx context.Context, actorUserID string, limit int, offset int) ([]domain.Order, error)
	CancelOrder(ctx context.Context, actorUserID string, orderID string) error
}
