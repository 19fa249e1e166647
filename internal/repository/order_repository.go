package repository

import (
	"context"

	"github.com/newshelton/storefront-api/internal/domain"
)

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	// CreateWithItems inserts the order header and all items in a
	// single transaction and fills in the generated order ID
	CreateWithItems(ctx context.Context, order *domain.Order, items []domain.OrderItem) error
	// ListByUserID retrieves a user's orders, newest first
	ListByUserID(ctx context.Context, userID int64) ([]*domain.Order, error)
}
