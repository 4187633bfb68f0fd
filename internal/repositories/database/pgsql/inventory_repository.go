package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tableauchef/tableauchef_backend/internal/apperrors"
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
	portsrepo "github.com/tableauchef/tableauchef_backend/internal/core/ports/repositories"
	"github.com/tableauchef/tableauchef_backend/internal/models"
)

type PgxInventoryRepository struct {
	db *pgxpool.Pool
}

func newPgxInventoryRepository(db *pgxpool.Pool) portsrepo.InventoryRepositoryFacade {
	return &PgxInventoryRepository{db: db}
}

var _ portsrepo.InventoryRepositoryFacade = (*PgxInventoryRepository)(nil)

func toModelInventoryItem(d domain.InventoryItem) models.InventoryItem {
	return models.InventoryItem{
		ItemID:            d.ItemID,
		RestaurantName:    d.RestaurantName,
		Name:              d.Name,
		Category:          d.Category,
		Unit:              d.Unit,
		Stock:             d.Stock,
		MaxStock:          d.MaxStock,
		LowStockThreshold: d.LowStockThreshold,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainInventoryItem(m models.InventoryItem) domain.InventoryItem {
	return domain.InventoryItem{
		ItemID:            m.ItemID,
		RestaurantName:    m.RestaurantName,
		Name:              m.Name,
		Category:          m.Category,
		Unit:              m.Unit,
		Stock:             m.Stock,
		MaxStock:          m.MaxStock,
		LowStockThreshold: m.LowStockThreshold,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const inventoryColumns = `item_id, restaurant_name, name, category, unit, stock, max_stock, low_stock_threshold, created_at, created_by, last_updated_at, last_updated_by`

func scanInventoryItem(row pgx.Row) (models.InventoryItem, error) {
	var m models.InventoryItem
	err := row.Scan(
		&m.ItemID,
		&m.RestaurantName,
		&m.Name,
		&m.Category,
		&m.Unit,
		&m.Stock,
		&m.MaxStock,
		&m.LowStockThreshold,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxInventoryRepository) FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE item_id = $1;`
	m, err := scanInventoryItem(r.db.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find inventory item %s: %w", itemID, err)
	}
	d := toDomainInventoryItem(m)
	return &d, nil
}

func (r *PgxInventoryRepository) ListItemsByRestaurant(ctx context.Context, restaurantName string, limit int, offset int) ([]domain.InventoryItem, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory
		WHERE restaurant_name = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, restaurantName, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory for %s: %w", restaurantName, err)
	}
	defer rows.Close()

	items := make([]domain.InventoryItem, 0)
	for rows.Next() {
		m, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}
		items = append(items, toDomainInventoryItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory rows: %w", err)
	}
	return items, nil
}

func (r *PgxInventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	m := toModelInventoryItem(item)
	query := `
		INSERT INTO inventory (item_id, restaurant_name, name, category, unit, stock, max_stock, low_stock_threshold, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.db.Exec(ctx, query,
		m.ItemID,
		m.RestaurantName,
		m.Name,
		m.Category,
		m.Unit,
		m.Stock,
		m.MaxStock,
		m.LowStockThreshold,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save inventory item: %w", err)
	}
	return nil
}

func (r *PgxInventoryRepository) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	m := toModelInventoryItem(item)
	query := `
		UPDATE inventory
		SET name = $2, category = $3, unit = $4, max_stock = $5, low_stock_threshold = $6, last_updated_at = $7, last_updated_by = $8
		WHERE item_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.ItemID,
		m.Name,
		m.Category,
		m.Unit,
		m.MaxStock,
		m.LowStockThreshold,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update inventory item %s: %w", item.ItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateStock writes only the stock column so mutations never clobber
// concurrent metadata edits.
func (r *PgxInventoryRepository) UpdateStock(ctx context.Context, itemID string, stock decimal.Decimal, updatedBy string) error {
	query := `
		UPDATE inventory
		SET stock = $2, last_updated_at = $3, last_updated_by = $4
		WHERE item_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, itemID, stock, time.Now().UTC(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update stock for item %s: %w", itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInventoryRepository) DeleteItem(ctx context.Context, itemID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM inventory WHERE item_id = $1;`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item %s: %w", itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
