package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterSession tracks the open/closed lifecycle of a restaurant's cash
// drawer. At most one session is open per restaurant at any time. OpeningCash
// is fixed once the session opens.
type RegisterSession struct {
	RestaurantName string          `json:"restaurantName"` // Tenant key, one row per restaurant
	IsOpen         bool            `json:"isOpen"`
	OpenedBy       string          `json:"openedBy,omitempty"` // Display name of the opening cashier
	OpenTime       *time.Time      `json:"openTime,omitempty"`
	OpeningCash    decimal.Decimal `json:"openingCash"`

	// LastVariance holds the most recently computed variance for the current
	// open period. Nil until ComputeVariance has run; cleared on close.
	LastVariance      *decimal.Decimal `json:"lastVariance,omitempty"`
	LastActualCounted *decimal.Decimal `json:"lastActualCounted,omitempty"`
}

// VarianceReport is the outcome of a variance computation while the register
// is open. Positive variance = surplus, negative = shortage.
type VarianceReport struct {
	OpeningCash  decimal.Decimal `json:"openingCash"`
	CashSales    decimal.Decimal `json:"cashSales"`
	ExpectedCash decimal.Decimal `json:"expectedCash"`
	ActualCash   decimal.Decimal `json:"actualCash"`
	Variance     decimal.Decimal `json:"variance"`
}

// JournalEntry is the append-only record written once per register closure.
// Entries are never updated or deleted.
type JournalEntry struct {
	JournalID      string          `json:"journalID"` // Primary Key (UUID)
	RestaurantName string          `json:"restaurantName"`
	Date           string          `json:"date"` // Calendar day, YYYY-MM-DD
	TotalSales     decimal.Decimal `json:"totalSales"`
	OpeningCash    decimal.Decimal `json:"openingCash"`
	Variance       decimal.Decimal `json:"variance"`
	ClosedBy       string          `json:"closedBy"` // Display name of the closing cashier
	CreatedAt      time.Time       `json:"createdAt"`
}
