package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the journals table row. Append-only.
type JournalEntry struct {
	JournalID      string          `db:"journal_id"`
	RestaurantName string          `db:"restaurant_name"`
	Date           string          `db:"entry_date"`
	TotalSales     decimal.Decimal `db:"total_sales"`
	OpeningCash    decimal.Decimal `db:"opening_cash"`
	Variance       decimal.Decimal `db:"variance"`
	ClosedBy       string          `db:"closed_by"`
	CreatedAt      time.Time       `db:"created_at"`
}
