package domain

import (
	"fmt"
	"time"
)

// Order is a persisted checkout. UserID is nil for guest checkout.
// Money fields satisfy Total = Subtotal + Tax at creation time and
// the row is never mutated afterwards.
type Order struct {
	ID            int64     `json:"id"`
	UserID        *int64    `json:"user_id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	Pincode       string    `json:"pincode"`
	PaymentMethod string    `json:"payment_method"`
	Subtotal      float64   `json:"subtotal"`
	Tax           float64   `json:"tax"`
	Total         float64   `json:"total"`
	CreatedAt     time.Time `json:"created_at"`
}

// OrderItem is one line of an order. It exists only as a child of
// exactly one order and is written in the same transaction.
type OrderItem struct {
	ID          int64   `json:"id"`
	OrderID     int64   `json:"order_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Qty         int     `json:"qty"`
}

// FormatOrderReference derives the user-facing order reference from
// the internal order id: prefix plus the decimal id zero-padded to
// six digits. Larger ids extend the field rather than truncating,
// so id 1234567 yields "NSH1234567".
func FormatOrderReference(prefix string, id int64) string {
	return fmt.Sprintf("%s%06d", prefix, id)
}

// Reference returns the order's user-facing reference.
func (o *Order) Reference(prefix string) string {
	return FormatOrderReference(prefix, o.ID)
}
