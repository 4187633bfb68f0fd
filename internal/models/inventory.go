package models

import "github.com/shopspring/decimal"

// InventoryItem is the inventory table row.
type InventoryItem struct {
	ItemID            string          `db:"item_id"`
	RestaurantName    string          `db:"restaurant_name"`
	Name              string          `db:"name"`
	Category          string          `db:"category"`
	Unit              string          `db:"unit"`
	Stock             decimal.Decimal `db:"stock"`
	MaxStock          decimal.Decimal `db:"max_stock"`
	LowStockThreshold decimal.Decimal `db:"low_stock_threshold"`
	AuditFields
}
