package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
)

// InventoryReader defines read operations for inventory items.
type InventoryReader interface {
	FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error)
	ListItemsByRestaurant(ctx context.Context, restaurantName string, limit int, offset int) ([]domain.InventoryItem, error)
}

// InventoryWriter defines write operations for inventory items.
type InventoryWriter interface {
	SaveItem(ctx context.Context, item domain.InventoryItem) error
	UpdateItem(ctx context.Context, item domain.InventoryItem) error

	// UpdateStock persists only the stock level of an item.
	UpdateStock(ctx context.Context, itemID string, stock decimal.Decimal, updatedBy string) error

	DeleteItem(ctx context.Context, itemID string) error
}

// InventoryRepositoryFacade combines all inventory repository interfaces.
type InventoryRepositoryFacade interface {
	InventoryReader
	InventoryWriter
}
