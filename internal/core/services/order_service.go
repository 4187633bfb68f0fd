package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tableauchef/tableauchef_backend/internal/apperrors"
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
	portsrepo "github.com/tableauchef/tableauchef_backend/internal/core/ports/repositories"
	portssvc "github.com/tableauchef/tableauchef_backend/internal/core/ports/services"
	"github.com/tableauchef/tableauchef_backend/internal/dto"
	"github.com/tableauchef/tableauchef_backend/internal/middleware"
)

type orderService struct {
	orderRepo   portsrepo.OrderRepositoryFacade
	productRepo portsrepo.ProductReader
	authorizer  portssvc.AuthorizerSvc
}

// NewOrderService creates the order entry service. It also implements the
// SalesSummarySvc port that feeds the register session manager.
func NewOrderService(
	orderRepo portsrepo.OrderRepositoryFacade,
	productRepo portsrepo.ProductReader,
	authorizer portssvc.AuthorizerSvc,
) portssvc.OrderSvcFacade {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		authorizer:  authorizer,
	}
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// CreateOrder records a settled counter sale. Prices come from the catalog
// and the total is computed here, never trusted from the client.
func (s *orderService) CreateOrder(ctx context.Context, actorUserID string, req dto.CreateOrderRequest) (*domain.Order, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.authorizer.AuthorizeAction(ctx, actorUserID, domain.CapTakeOrders)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	orderID := uuid.NewString()
	total := decimal.Zero
	items := make([]domain.OrderItem, 0, len(req.Items))

	for _, line := range req.Items {
		if !line.Quantity.IsPositive() {
			return nil, apperrors.ErrValidation
		}
		product, err := s.productRepo.FindProductByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if product.RestaurantName != actor.RestaurantName || !product.IsActive {
			return nil, apperrors.ErrValidation
		}
		item := domain.OrderItem{
			OrderItemID: uuid.NewString(),
			OrderID:     orderID,
			ProductID:   product.ProductID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   product.Price,
		}
		total = total.Add(item.LineTotal())
		items = append(items, item)
	}

	order := domain.Order{
		OrderID:        orderID,
		RestaurantName: actor.RestaurantName,
		TableLabel:     req.TableLabel,
		Items:          items,
		PaymentMethod:  domain.PaymentMethod(req.PaymentMethod),
		Status:         domain.OrderPaid,
		Total:          total,
		PlacedAt:       now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		logger.Error("Failed to save order", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Order placed", slog.String("order_id", orderID), slog.String("total", total.String()), slog.String("method", req.PaymentMethod))
	return &order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, actorUserID string, orderID string) (*domain.Order, error) {
	actor, err := s.authorizer.AuthorizeAction(ctx, actorUserID, domain.CapTakeOrders)
	if err != nil {
		return nil, err
	}
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.RestaurantName != actor.RestaurantName {
		return nil, apperrors.ErrNotFound
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, actorUserID string, limit int, offset int) ([]domain.Order, error) {
	actor, err := s.authorizer.AuthorizeAction(ctx, actorUserID, domain.CapTakeOrders)
	if err != nil {
		return nil, err
	}
	return s.orderRepo.ListOrdersByRestaurant(ctx, actor.RestaurantName, limit, offset)
}

func (s *orderService) CancelOrder(ctx context.Context, actorUserID string, orderID string) error {
	order, err := s.GetOrderByID(ctx, actorUserID, orderID)
	if err != nil {
		return err
	}
	if order.Status == domain.OrderCancelled {
		return apperrors.ErrInvalidState
	}
	return s.orderRepo.UpdateOrderStatus(ctx, orderID, domain.OrderCancelled, actorUserID)
}

// CashSalesForDay totals the day's paid cash orders for one restaurant.
func (s *orderService) CashSalesForDay(ctx context.Context, restaurantName string, day time.Time) (decimal.Decimal, error) {
	return s.orderRepo.SumSalesForDay(ctx, restaurantName, day, domain.PaymentCash)
}

// TotalSalesForDay totals the day's paid orders across all payment methods.
func (s *orderService) TotalSalesForDay(ctx context.Context, restaurantName string, day time.Time) (decimal.Decimal, error) {
	return s.orderRepo.SumSalesForDay(ctx, restaurantName, day, "")
}
