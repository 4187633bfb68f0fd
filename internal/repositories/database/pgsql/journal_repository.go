package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tableauchef/tableauchef_backend/internal/apperrors"
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
	portsrepo "github.com/tableauchef/tableauchef_backend/internal/core/ports/repositories"
	"github.com/tableauchef/tableauchef_backend/internal/models"
)

type PgxJournalRepository struct {
	db *pgxpool.Pool
}

func newPgxJournalRepository(db *pgxpool.Pool) portsrepo.JournalRepository {
	return &PgxJournalRepository{db: db}
}

var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

func toDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		JournalID:      m.JournalID,
		RestaurantName: m.RestaurantName,
		Date:           m.Date,
		TotalSales:     m.TotalSales,
		OpeningCash:    m.OpeningCash,
		Variance:       m.Variance,
		ClosedBy:       m.ClosedBy,
		CreatedAt:      m.CreatedAt,
	}
}

// AppendEntry inserts one journal row. The table has no update path.
func (r *PgxJournalRepository) AppendEntry(ctx context.Context, entry domain.JournalEntry) error {
	query := `
		INSERT INTO journals (journal_id, restaurant_name, entry_date, total_sales, opening_cash, variance, closed_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db.Exec(ctx, query,
		entry.JournalID,
		entry.RestaurantName,
		entry.Date,
		entry.TotalSales,
		entry.OpeningCash,
		entry.Variance,
		entry.ClosedBy,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append journal entry: %w", err)
	}
	return nil
}

func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, journalID string) (*domain.JournalEntry, error) {
	query := `
		SELECT journal_id, restaurant_name, entry_date, total_sales, opening_cash, variance, closed_by, created_at
		FROM journals
		WHERE journal_id = $1;
	`
	var m models.JournalEntry
	err := r.db.QueryRow(ctx, query, journalID).Scan(
		&m.JournalID,
		&m.RestaurantName,
		&m.Date,
		&m.TotalSales,
		&m.OpeningCash,
		&m.Variance,
		&m.ClosedBy,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", journalID, err)
	}
	d := toDomainJournalEntry(m)
	return &d, nil
}

func (r *PgxJournalRepository) ListEntriesByRestaurant(ctx context.Context, restaurantName string, limit int, offset int) ([]domain.JournalEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT journal_id, restaurant_name, entry_date, total_sales, opening_cash, variance, closed_by, created_at
		FROM journals
		WHERE restaurant_name = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, restaurantName, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries for %s: %w", restaurantName, err)
	}
	defer rows.Close()

	entries := make([]domain.JournalEntry, 0)
	for rows.Next() {
		var m models.JournalEntry
		if err := rows.Scan(
			&m.JournalID,
			&m.RestaurantName,
			&m.Date,
			&m.TotalSales,
			&m.OpeningCash,
			&m.Variance,
			&m.ClosedBy,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal row: %w", err)
		}
		entries = append(entries, toDomainJournalEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal rows: %w", err)
	}
	return entries, nil
}
