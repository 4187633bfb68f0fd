package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
)

// CreateInventoryItemRequest carries the fields of a new stock line.
type CreateInventoryItemRequest struct {
	Name              string          `json:"name" binding:"required"`
	Category          string          `json:"category"`
	Unit              string          `json:"unit" binding:"required"`
	Stock             decimal.Decimal `json:"stock"`
	MaxStock          decimal.Decimal `json:"maxStock" binding:"required"`
	LowStockThreshold decimal.Decimal `json:"lowStockThreshold"`
}

// UpdateInventoryItemRequest updates descriptive fields of a stock line.
// Stock itself only moves through mutations.
type UpdateInventoryItemRequest struct {
	Name              *string          `json:"name"`
	Category          *string          `json:"category"`
	Unit              *string          `json:"unit"`
	MaxStock          *decimal.Decimal `json:"maxStock"`
	LowStockThreshold *decimal.Decimal `json:"lowStockThreshold"`
}

// StockMutationRequest applies one stock mutation to an item.
type StockMutationRequest struct {
	Kind   string          `json:"kind" binding:"required,oneof=restock consume physical_count"`
	Amount decimal.Decimal `json:"amount"`
}

// InventoryItemResponse is the public shape of a stock line.
type InventoryItemResponse struct {
	ItemID            string `json:"itemID"`
	RestaurantName    string `json:"restaurantName"`
	Name              string `json:"name"`
	Category          string `json:"category"`
	Unit              string `json:"unit"`
	Stock             string `json:"stock"`
	MaxStock          string `json:"maxStock"`
	LowStockThreshold string `json:"lowStockThreshold"`
	LowStock          bool   `json:"lowStock"`
}

// ToInventoryItemResponse converts a domain item to its response DTO.
func ToInventoryItemResponse(i *domain.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ItemID:            i.ItemID,
		RestaurantName:    i.RestaurantName,
		Name:              i.Name,
		Category:          i.Category,
		Unit:              i.Unit,
		Stock:             i.Stock.String(),
		MaxStock:          i.MaxStock.String(),
		LowStockThreshold: i.LowStockThreshold.String(),
		LowStock:          i.Stock.LessThanOrEqual(i.AlertThreshold()),
	}
}

// ToListInventoryResponse converts a slice of items to response DTOs.
func ToListInventoryResponse(items []domain.InventoryItem) []InventoryItemResponse {
	out := make([]InventoryItemResponse, len(items))
	for i := range items {
		out[i] = ToInventoryItemResponse(&items[i])
	}
	return out
}
