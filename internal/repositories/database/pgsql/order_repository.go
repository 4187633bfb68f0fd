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

type PgxOrderRepository struct {
	BaseRepository
}

func newPgxOrderRepository(db *pgxpool.Pool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

func toDomainOrder(m models.Order, items []models.OrderItem) domain.Order {
	d := domain.Order{
		OrderID:        m.OrderID,
		RestaurantName: m.RestaurantName,
		TableLabel:     m.TableLabel,
		PaymentMethod:  domain.PaymentMethod(m.PaymentMethod),
		Status:         domain.OrderStatus(m.Status),
		Total:          m.Total,
		PlacedAt:       m.PlacedAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	d.Items = make([]domain.OrderItem, len(items))
	for i, it := range items {
		d.Items[i] = domain.OrderItem{
			OrderItemID: it.OrderItemID,
			OrderID:     it.OrderID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		}
	}
	return d
}

const orderColumns = `order_id, restaurant_name, table_label, payment_method, status, total, placed_at, created_at, created_by, last_updated_at, last_updated_by`

func scanOrder(row pgx.Row) (models.Order, error) {
	var m models.Order
	err := row.Scan(
		&m.OrderID,
		&m.RestaurantName,
		&m.TableLabel,
		&m.PaymentMethod,
		&m.Status,
		&m.Total,
		&m.PlacedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxOrderRepository) findItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	query := `
		SELECT order_item_id, order_id, product_id, product_name, quantity, unit_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY order_item_id;
	`
	rows, err := r.Pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items for %s: %w", orderID, err)
	}
	defer rows.Close()

	items := make([]models.OrderItem, 0)
	for rows.Next() {
		var m models.OrderItem
		if err := rows.Scan(&m.OrderItemID, &m.OrderID, &m.ProductID, &m.ProductName, &m.Quantity, &m.UnitPrice); err != nil {
			return nil, fmt.Errorf("failed to scan order item row: %w", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order item rows: %w", err)
	}
	return items, nil
}

func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1;`
	m, err := scanOrder(r.Pool.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order %s: %w", orderID, err)
	}
	items, err := r.findItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	d := toDomainOrder(m, items)
	return &d, nil
}

func (r *PgxOrderRepository) ListOrdersByRestaurant(ctx context.Context, restaurantName string, limit int, offset int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE restaurant_name = $1
		ORDER BY placed_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, restaurantName, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders for %s: %w", restaurantName, err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		m, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, toDomainOrder(m, nil))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}

	for i := range orders {
		items, err := r.findItems(ctx, orders[i].OrderID)
		if err != nil {
			return nil, err
		}
		d := orders[i]
		d.Items = make([]domain.OrderItem, len(items))
		for j, it := range items {
			d.Items[j] = domain.OrderItem{
				OrderItemID: it.OrderItemID,
				OrderID:     it.OrderID,
				ProductID:   it.ProductID,
				ProductName: it.ProductName,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
			}
		}
		orders[i] = d
	}
	return orders, nil
}

// SumSalesForDay totals paid orders placed on the given calendar day. An empty
// method sums all payment methods.
func (r *PgxOrderRepository) SumSalesForDay(ctx context.Context, restaurantName string, day time.Time, method domain.PaymentMethod) (decimal.Decimal, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()).UTC()
	dayEnd := dayStart.Add(24 * time.Hour)

	query := `
		SELECT COALESCE(SUM(total), 0)
		FROM orders
		WHERE restaurant_name = $1
		  AND status = 'paid'
		  AND placed_at >= $2 AND placed_at < $3
		  AND ($4 = '' OR payment_method = $4);
	`
	var sum decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, restaurantName, dayStart, dayEnd, string(method)).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum sales for %s: %w", restaurantName, err)
	}
	return sum, nil
}

// SaveOrder writes the order row and its item rows in one transaction.
func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	orderQuery := `
		INSERT INTO orders (order_id, restaurant_name, table_label, payment_method, status, total, placed_at, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, orderQuery,
		order.OrderID,
		order.RestaurantName,
		order.TableLabel,
		string(order.PaymentMethod),
		string(order.Status),
		order.Total,
		order.PlacedAt,
		order.CreatedAt,
		order.CreatedBy,
		order.LastUpdatedAt,
		order.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (order_item_id, order_id, product_id, product_name, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, item := range order.Items {
		_, err = tx.Exec(ctx, itemQuery,
			item.OrderItemID,
			order.OrderID,
			item.ProductID,
			item.ProductName,
			item.Quantity,
			item.UnitPrice,
		)
		if err != nil {
			return fmt.Errorf("failed to save order item: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxOrderRepository) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, updatedBy string) error {
	query := `
		UPDATE orders
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE order_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, orderID, string(status), time.Now().UTC(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update order status for %s: %w", orderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
