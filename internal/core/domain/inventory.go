package domain

import "github.com/shopspring/decimal"

// DefaultLowStockThreshold applies when an item carries no explicit threshold.
var DefaultLowStockThreshold = decimal.NewFromFloat(0.2)

// InventoryItem is a tracked stock line for one restaurant.
type InventoryItem struct {
	ItemID            string          `json:"itemID"` // Primary Key (UUID)
	RestaurantName    string          `json:"restaurantName"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Unit              string          `json:"unit"`              // e.g. "kg", "L", "pcs"
	Stock             decimal.Decimal `json:"stock"`             // Quantity on hand, never negative
	MaxStock          decimal.Decimal `json:"maxStock"`          // Capacity reference, > 0
	LowStockThreshold decimal.Decimal `json:"lowStockThreshold"` // Fraction in (0,1]; zero means use default
	AuditFields
}

// AlertThreshold returns the absolute quantity at or below which the item
// counts as low on stock.
func (i *InventoryItem) AlertThreshold() decimal.Decimal {
	frac := i.LowStockThreshold
	if frac.IsZero() {
		frac = DefaultLowStockThreshold
	}
	return i.MaxStock.Mul(frac)
}

// MutationKind discriminates the three stock mutations.
type MutationKind string

const (
	MutationRestock       MutationKind = "restock"
	MutationConsume       MutationKind = "consume"
	MutationPhysicalCount MutationKind = "physical_count"
)

// StockMutation is a transient command against an inventory item; it is not
// persisted as an entity. Amount is a positive delta for restock/consume and
// the absolute new total for a physical recount.
type StockMutation struct {
	Kind   MutationKind    `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
}

// NewStock returns the stock level the mutation would produce from current.
func (m StockMutation) NewStock(current decimal.Decimal) decimal.Decimal {
	switch m.Kind {
	case MutationRestock:
		return current.Add(m.Amount)
	case MutationConsume:
		return current.Sub(m.Amount)
	case MutationPhysicalCount:
		return m.Amount
	default:
		return current
	}
}
