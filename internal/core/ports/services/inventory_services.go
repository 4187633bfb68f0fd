package services

import (
	"context"

	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
	"github.com/tableauchef/tableauchef_backend/internal/dto"
)

// InventorySvcFacade manages stock lines and applies stock mutations.
type InventorySvcFacade interface {
	CreateItem(ctx context.Context, actorUserID string, req dto.CreateInventoryItemRequest) (*domain.InventoryItem, error)
	GetItemByID(ctx context.Context, actorUserID string, itemID string) (*domain.InventoryItem, error)
	ListItems(ctx context.Context, actorUserID string, limit int, offset int) ([]domain.InventoryItem, error)
	UpdateItem(ctx context.Context, actorUserID string, itemID string, req dto.UpdateInventoryItemRequest) (*domain.InventoryItem, error)
	DeleteItem(ctx context.Context, actorUserID string, itemID string) error

	// ApplyMutation applies one restock/consume/recount against an item,
	// rejecting anything that would drive stock negative, and fires the
	// edge-triggered low-stock notification.
	ApplyMutation(ctx context.Context, actorUserID string, itemID string, req dto.StockMutationRequest) (*domain.InventoryItem, error)
}
