package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/newshelton/storefront-api/internal/domain"
)

// PostgresOrderRepository implements OrderRepository using PostgreSQL
type PostgresOrderRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresOrderRepository creates a new PostgresOrderRepository
func NewPostgresOrderRepository(pool *pgxpool.Pool) *PostgresOrderRepository {
	return &PostgresOrderRepository{pool: pool}
}

// CreateWithItems inserts the order header and its items in one
// transaction. Either the whole order is persisted or none of it;
// there is never a header without its lines.
func (r *PostgresOrderRepository) CreateWithItems(ctx context.Context, order *domain.Order, items []domain.OrderItem) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	headerQuery := `
		INSERT INTO orders (user_id, first_name, last_name, email, phone, address, city, state, pincode, payment_method, subtotal, tax, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`
	err = tx.QueryRow(ctx, headerQuery,
		order.UserID,
		order.FirstName,
		order.LastName,
		order.Email,
		order.Phone,
		order.Address,
		order.City,
		order.State,
		order.Pincode,
		order.PaymentMethod,
		order.Subtotal,
		order.Tax,
		order.Total,
		order.CreatedAt,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_name, price, qty)
		VALUES ($1, $2, $3, $4)
	`
	for i := range items {
		items[i].OrderID = order.ID
		if _, err := tx.Exec(ctx, itemQuery,
			items[i].OrderID,
			items[i].ProductName,
			items[i].Price,
			items[i].Qty,
		); err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListByUserID retrieves a user's orders, newest first
func (r *PostgresOrderRepository) ListByUserID(ctx context.Context, userID int64) ([]*domain.Order, error) {
	query := `
		SELECT id, user_id, first_name, last_name, email, phone, address, city, state, pincode, payment_method, subtotal, tax, total, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		order := &domain.Order{}
		if err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.FirstName,
			&order.LastName,
			&order.Email,
			&order.Phone,
			&order.Address,
			&order.City,
			&order.State,
			&order.Pincode,
			&order.PaymentMethod,
			&order.Subtotal,
			&order.Tax,
			&order.Total,
			&order.CreatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
