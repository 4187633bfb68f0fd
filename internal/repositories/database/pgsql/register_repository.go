package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
	portsrepo "github.com/tableauchef/tableauchef_backend/internal/core/ports/repositories"
	"github.com/tableauchef/tableauchef_backend/internal/models"
)

type PgxRegisterRepository struct {
	db *pgxpool.Pool
}

func newPgxRegisterRepository(db *pgxpool.Pool) portsrepo.RegisterSessionRepository {
	return &PgxRegisterRepository{db: db}
}

var _ portsrepo.RegisterSessionRepository = (*PgxRegisterRepository)(nil)

func toModelRegisterSession(d domain.RegisterSession) models.RegisterSession {
	return models.RegisterSession{
		RestaurantName:    d.RestaurantName,
		IsOpen:            d.IsOpen,
		OpenedBy:          d.OpenedBy,
		OpenTime:          d.OpenTime,
		OpeningCash:       d.OpeningCash,
		LastVariance:      d.LastVariance,
		LastActualCounted: d.LastActualCounted,
		LastUpdatedAt:     time.Now().UTC(),
	}
}

func toDomainRegisterSession(m models.RegisterSession) domain.RegisterSession {
	return domain.RegisterSession{
		RestaurantName:    m.RestaurantName,
		IsOpen:            m.IsOpen,
		OpenedBy:          m.OpenedBy,
		OpenTime:          m.OpenTime,
		OpeningCash:       m.OpeningCash,
		LastVariance:      m.LastVariance,
		LastActualCounted: m.LastActualCounted,
	}
}

// FindSession returns the session row for the restaurant, or a pristine
// Closed session when none has been stored yet.
func (r *PgxRegisterRepository) FindSession(ctx context.Context, restaurantName string) (*domain.RegisterSession, error) {
	query := `
		SELECT restaurant_name, is_open, opened_by, open_time, opening_cash, last_variance, last_actual_counted, last_updated_at
		FROM register_sessions
		WHERE restaurant_name = $1;
	`
	var m models.RegisterSession
	err := r.db.QueryRow(ctx, query, restaurantName).Scan(
		&m.RestaurantName,
		&m.IsOpen,
		&m.OpenedBy,
		&m.OpenTime,
		&m.OpeningCash,
		&m.LastVariance,
		&m.LastActualCounted,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.RegisterSession{
				RestaurantName: restaurantName,
				IsOpen:         false,
				OpeningCash:    decimal.Zero,
			}, nil
		}
		return nil, fmt.Errorf("failed to find register session for %s: %w", restaurantName, err)
	}
	d := toDomainRegisterSession(m)
	return &d, nil
}

func (r *PgxRegisterRepository) SaveSession(ctx context.Context, session domain.RegisterSession) error {
	m := toModelRegisterSession(session)
	query := `
		INSERT INTO register_sessions (restaurant_name, is_open, opened_by, open_time, opening_cash, last_variance, last_actual_counted, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (restaurant_name) DO UPDATE SET
			is_open = EXCLUDED.is_open,
			opened_by = EXCLUDED.opened_by,
			open_time = EXCLUDED.open_time,
			opening_cash = EXCLUDED.opening_cash,
			last_variance = EXCLUDED.last_variance,
			last_actual_counted = EXCLUDED.last_actual_counted,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.db.Exec(ctx, query,
		m.RestaurantName,
		m.IsOpen,
		m.OpenedBy,
		m.OpenTime,
		m.OpeningCash,
		m.LastVariance,
		m.LastActualCounted,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save register session for %s: %w", session.RestaurantName, err)
	}
	return nil
}

// ClearSession resets the row to the Closed state without deleting it, so the
// restaurant keeps exactly one session row once it ever opened a register.
func (r *PgxRegisterRepository) ClearSession(ctx context.Context, restaurantName string) error {
	query := `
		UPDATE register_sessions
		SET is_open = FALSE,
			opened_by = '',
			open_time = NULL,
			opening_cash = 0,
			last_variance = NULL,
			last_actual_counted = NULL,
			last_updated_at = $2
		WHERE restaurant_name = $1;
	`
	_, err := r.db.Exec(ctx, query, restaurantName, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to clear register session for %s: %w", restaurantName, err)
	}
	return nil
}
