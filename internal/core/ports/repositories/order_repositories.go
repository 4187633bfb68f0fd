package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
)

// OrderReader defines read operations for orders.
type OrderReader interface {
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
	ListOrdersByRestaurant(ctx context.Context, restaurantName string, limit int, offset int) ([]domain.Order, error)

	// SumSalesForDay returns the total of paid orders placed on the given
	// calendar day, optionally restricted to one payment method
	// (empty method means all).
	SumSalesForDay(ctx context.Context, restaurantName string, day time.Time, method domain.PaymentMethod) (decimal.Decimal, error)
}

// OrderWriter defines write operations for orders.
type OrderWriter interface {
	// SaveOrder persists an order together with its items.
	SaveOrder(ctx context.Context, order domain.Order) error

	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, updatedBy string) error
}

// OrderRepositoryFacade combines all order repository interfaces.
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}
