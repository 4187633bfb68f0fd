package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterSession is the register_sessions table row, one per restaurant.
type RegisterSession struct {
	RestaurantName    string           `db:"restaurant_name"`
	IsOpen            bool             `db:"is_open"`
	OpenedBy          string           `db:"opened_by"`
	OpenTime          *time.Time       `db:"open_time"`
	OpeningCash       decimal.Decimal  `db:"opening_cash"`
	LastVariance      *decimal.Decimal `db:"last_variance"`
	LastActualCounted *decimal.Decimal `db:"last_actual_counted"`
	LastUpdatedAt     time.Time        `db:"last_updated_at"`
}
