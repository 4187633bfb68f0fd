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
	"github.com/tableauchef/tableauchef_backend/internal/platform/events"
)

type inventoryService struct {
	inventoryRepo portsrepo.InventoryRepositoryFacade
	authorizer    portssvc.AuthorizerSvc
	notifications portssvc.NotificationSvcFacade
	broadcaster   *events.Broadcaster
}

// NewInventoryService creates the stock ledger service.
func NewInventoryService(
	inventoryRepo portsrepo.InventoryRepositoryFacade,
	authorizer portssvc.AuthorizerSvc,
	notifications portssvc.NotificationSvcFacade,
	broadcaster *events.Broadcaster,
) portssvc.InventorySvcFacade {
	return &inventoryService{
		inventoryRepo: inventoryRepo,
		authorizer:    authorizer,
		notifications: notifications,
		broadcaster:   broadcaster,
	}
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

var decimalOne = decimal.NewFromInt(1)

func (s *inventoryService) CreateItem(ctx context.Context, actorUserID string, req dto.CreateInventoryItemRequest) (*domain.InventoryItem, error) {
	actor, err := s.authorizer.AuthorizeAction(ctx, actorUserID, domain.CapManageInventory)
	if err != nil {
		return nil, err
	}
	if req.Stock.IsNegative() || !req.MaxStock.IsPositive() {
		return nil, apperrors.ErrValidation
	}
	if req.LowStockThreshold.IsNegative() || req.LowStockThreshold.GreaterThan(decimalOne) {
		return nil, apperrors.ErrValidation
	}

	now := time.Now().UTC()
	item := domain.InventoryItem{
		ItemID:            uuid.NewString(),
		RestaurantName:    actor.RestaurantName,
		Name:              req.Name,
		Category:          req.Category,
		Unit:              req.Unit,
		Stock:             req.Stock,
		MaxStock:          req.MaxStock,
		LowStockThreshold: req.LowStockThreshold,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}
	if err := s.inventoryRepo.SaveItem(ctx, item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *inventoryService) GetItemByID(ctx context.Context, actorUserID string, itemID string) (*domain.InventoryItem, error) {
	actor, err := s.authorizer.AuthorizeAction(ctx, actorUserID, domain.CapManageInventory)
	if err != nil {
		return nil, err
	}
	item, err := s.inventoryRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.RestaurantName != actor.RestaurantName {
		return nil, apperrors.ErrNotFound
	}
	return item, nil
}

func (s *inventoryService) ListItems(ctx context.Context, actorUserID string, limit int, offset int) ([]domain.InventoryItem, error) {
	actor, err := s.authorizer.AuthorizeAction(ctx, actorUserID, domain.CapManageInventory)
	if err != nil {
		return nil, err
	}
	return s.inventoryRepo.ListItemsByRestaurant(ctx, actor.RestaurantName, limit, offset)
}

func (s *inventoryService) UpdateItem(ctx context.Context, actorUserID string, itemID string, req dto.UpdateInventoryItemRequest) (*domain.InventoryItem, error) {
	item, err := s.GetItemByID(ctx, actorUserID, itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.MaxStock != nil {
		if !req.MaxStock.IsPositive() {
			return nil, apperrors.ErrValidation
		}
		item.MaxStock = *req.MaxStock
	}
	if req.LowStockThreshold != nil {
		if req.LowStockThreshold.IsNegative() || req.LowStockThreshold.GreaterThan(decimalOne) {
			return nil, apperrors.ErrValidation
		}
		item.LowStockThreshold = *req.LowStockThreshold
	}
	item.LastUpdatedAt = time.Now().UTC()
	item.LastUpdatedBy = actorUserID

	if err := s.inventoryRepo.UpdateItem(ctx, *item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, actorUserID string, itemID string) error {
	if _, err := s.GetItemByID(ctx, actorUserID, itemID); err != nil {
		return err
	}
	return s.inventoryRepo.DeleteItem(ctx, itemID)
}

// ApplyMutation applies one restock, consume or physical recount. Anything
// that would drive stock negative is rejected before any write. The low-stock
// notification is edge triggered: it fires only when this mutation moves the
// item from above the threshold to at-or-below it, so an item sitting in the
// low zone stays silent until it recovers and dips again.
func (s *inventoryService) ApplyMutation(ctx context.Context, actorUserID string, itemID string, req dto.StockMutationRequest) (*domain.InventoryItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.authorizer.AuthorizeAction(ctx, actorUserID, domain.CapManageInventory)
	if err != nil {
		return nil, err
	}
	item, err := s.inventoryRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.RestaurantName != actor.RestaurantName {
		return nil, apperrors.ErrNotFound
	}

	mutation := domain.StockMutation{Kind: domain.MutationKind(req.Kind), Amount: req.Amount}
	switch mutation.Kind {
	case domain.MutationRestock, domain.MutationConsume:
		if !mutation.Amount.IsPositive() {
			return nil, apperrors.ErrValidation
		}
	case domain.MutationPhysicalCount:
		if mutation.Amount.IsNegative() {
			return nil, apperrors.ErrValidation
		}
	default:
		return nil, apperrors.ErrValidation
	}

	prevStock := item.Stock
	newStock := mutation.NewStock(prevStock)
	if newStock.IsNegative() {
		return nil, apperrors.ErrNegativeStock
	}

	if err := s.inventoryRepo.UpdateStock(ctx, itemID, newStock, actorUserID); err != nil {
		return nil, err
	}
	item.Stock = newStock

	threshold := item.AlertThreshold()
	crossedDown := prevStock.GreaterThan(threshold) && newStock.LessThanOrEqual(threshold)
	if crossedDown {
		// Best effort pair: the stock write stands even if the alert fails.
		if _, err := s.notifications.CreateStockAlert(ctx, item.RestaurantName, item.Name, newStock, item.Unit); err != nil {
			logger.Error("Failed to persist low stock alert", slog.String("item_id", itemID), slog.String("error", err.Error()))
		}
	}

	s.broadcaster.Publish(events.Event{
		Topic:   item.RestaurantName,
		Kind:    "stock.changed",
		Payload: dto.ToInventoryItemResponse(item),
	})
	return item, nil
}
