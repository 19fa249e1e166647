package service

import (
	"context"
	"errors"
	"testing"

	"github.com/newshelton/storefront-api/internal/domain"
	"github.com/newshelton/storefront-api/internal/dto"
)

// mockOrderRepository is a mock implementation of OrderRepository
type mockOrderRepository struct {
	orders      []*domain.Order
	items       map[int64][]domain.OrderItem
	nextID      int64
	createError error
	listError   error
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{
		items:  make(map[int64][]domain.OrderItem),
		nextID: 1,
	}
}

func (r *mockOrderRepository) CreateWithItems(ctx context.Context, order *domain.Order, items []domain.OrderItem) error {
	if r.createError != nil {
		// Transactional: a failed write leaves nothing behind
		return r.createError
	}
	order.ID = r.nextID
	r.nextID++
	for i := range items {
		items[i].OrderID = order.ID
	}
	r.orders = append(r.orders, order)
	r.items[order.ID] = items
	return nil
}

func (r *mockOrderRepository) ListByUserID(ctx context.Context, userID int64) ([]*domain.Order, error) {
	if r.listError != nil {
		return nil, r.listError
	}
	result := make([]*domain.Order, 0)
	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].UserID != nil && *r.orders[i].UserID == userID {
			result = append(result, r.orders[i])
		}
	}
	return result, nil
}

func checkoutRequest(cart []domain.CartLine) *dto.PlaceOrderRequest {
	return &dto.PlaceOrderRequest{
		FirstName:     "Asha",
		LastName:      "Khan",
		Email:         "asha@example.com",
		Phone:         "0300-1234567",
		Address:       "12 Mill Road",
		City:          "Lahore",
		State:         "Punjab",
		Pincode:       "54000",
		PaymentMethod: "cod",
		Cart:          cart,
	}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	t.Run("guest order", func(t *testing.T) {
		repo := newMockOrderRepository()
		svc := NewOrderService(repo, &OrderServiceConfig{AllowGuest: true, ReferencePrefix: "NSH"})

		cart := []domain.CartLine{
			{Name: "Crew Socks", Price: 199.50, Qty: 2},
			{Name: "Ankle Socks", Price: 99, Qty: 1},
		}

		ref, err := svc.PlaceOrder(context.Background(), checkoutRequest(cart), nil)
		if err != nil {
			t.Fatalf("PlaceOrder() error = %v", err)
		}
		if ref != "NSH000001" {
			t.Errorf("PlaceOrder() reference = %q, want NSH000001", ref)
		}

		if len(repo.orders) != 1 {
			t.Fatalf("orders persisted = %d, want 1", len(repo.orders))
		}
		order := repo.orders[0]
		if order.UserID != nil {
			t.Error("guest order has a user ID")
		}
		if order.Subtotal != 498 {
			t.Errorf("Subtotal = %v, want 498", order.Subtotal)
		}
		if order.Total != order.Subtotal+order.Tax {
			t.Errorf("Total = %v, want Subtotal+Tax", order.Total)
		}
		if len(repo.items[order.ID]) != 2 {
			t.Errorf("items persisted = %d, want 2", len(repo.items[order.ID]))
		}
	})

	t.Run("attributed to logged-in user", func(t *testing.T) {
		repo := newMockOrderRepository()
		svc := NewOrderService(repo, &OrderServiceConfig{AllowGuest: true, ReferencePrefix: "NSH"})

		userID := int64(42)
		cart := []domain.CartLine{{Name: "Socks", Price: 100, Qty: 1}}

		if _, err := svc.PlaceOrder(context.Background(), checkoutRequest(cart), &userID); err != nil {
			t.Fatalf("PlaceOrder() error = %v", err)
		}
		if repo.orders[0].UserID == nil || *repo.orders[0].UserID != userID {
			t.Errorf("order UserID = %v, want %d", repo.orders[0].UserID, userID)
		}
	})

	t.Run("empty cart writes nothing", func(t *testing.T) {
		repo := newMockOrderRepository()
		svc := NewOrderService(repo, &OrderServiceConfig{AllowGuest: true, ReferencePrefix: "NSH"})

		_, err := svc.PlaceOrder(context.Background(), checkoutRequest(nil), nil)
		if !errors.Is(err, domain.ErrEmptyCart) {
			t.Errorf("PlaceOrder() error = %v, want %v", err, domain.ErrEmptyCart)
		}
		if len(repo.orders) != 0 {
			t.Errorf("orders persisted = %d, want 0", len(repo.orders))
		}
	})

	t.Run("guest checkout disabled", func(t *testing.T) {
		repo := newMockOrderRepository()
		svc := NewOrderService(repo, &OrderServiceConfig{AllowGuest: false, ReferencePrefix: "NSH"})

		cart := []domain.CartLine{{Name: "Socks", Price: 100, Qty: 1}}

		_, err := svc.PlaceOrder(context.Background(), checkoutRequest(cart), nil)
		if !errors.Is(err, domain.ErrGuestCheckoutDisabled) {
			t.Errorf("PlaceOrder() error = %v, want %v", err, domain.ErrGuestCheckoutDisabled)
		}

		// A logged-in user still checks out fine
		userID := int64(7)
		if _, err := svc.PlaceOrder(context.Background(), checkoutRequest(cart), &userID); err != nil {
			t.Errorf("PlaceOrder() with session error = %v", err)
		}
	})

	t.Run("persistence failure", func(t *testing.T) {
		repo := newMockOrderRepository()
		repo.createError = errors.New("connection refused")
		svc := NewOrderService(repo, &OrderServiceConfig{AllowGuest: true, ReferencePrefix: "NSH"})

		cart := []domain.CartLine{{Name: "Socks", Price: 100, Qty: 1}}

		_, err := svc.PlaceOrder(context.Background(), checkoutRequest(cart), nil)
		if !errors.Is(err, domain.ErrOrderPersistence) {
			t.Errorf("PlaceOrder() error = %v, want %v", err, domain.ErrOrderPersistence)
		}
	})

	t.Run("tax applied when configured", func(t *testing.T) {
		repo := newMockOrderRepository()
		svc := NewOrderService(repo, &OrderServiceConfig{TaxRate: 0.05, AllowGuest: true, ReferencePrefix: "NSH"})

		cart := []domain.CartLine{{Name: "Socks", Price: 25, Qty: 1}}

		if _, err := svc.PlaceOrder(context.Background(), checkoutRequest(cart), nil); err != nil {
			t.Fatalf("PlaceOrder() error = %v", err)
		}

		order := repo.orders[0]
		if order.Tax != 1 {
			t.Errorf("Tax = %v, want 1 (1.25 rounds to 1)", order.Tax)
		}
		if order.Total != 26 {
			t.Errorf("Total = %v, want 26", order.Total)
		}
	})
}

func TestOrderService_ListOrdersForUser(t *testing.T) {
	repo := newMockOrderRepository()
	svc := NewOrderService(repo, &OrderServiceConfig{AllowGuest: true, ReferencePrefix: "NSH"})

	userID := int64(9)
	cart := []domain.CartLine{{Name: "Socks", Price: 50, Qty: 2}}

	for i := 0; i < 3; i++ {
		if _, err := svc.PlaceOrder(context.Background(), checkoutRequest(cart), &userID); err != nil {
			t.Fatalf("PlaceOrder() error = %v", err)
		}
	}
	// One guest order that must not show up
	if _, err := svc.PlaceOrder(context.Background(), checkoutRequest(cart), nil); err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}

	orders, err := svc.ListOrdersForUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("ListOrdersForUser() error = %v", err)
	}
	if len(orders) != 3 {
		t.Errorf("ListOrdersForUser() returned %d orders, want 3", len(orders))
	}
	for _, o := range orders {
		if o.UserID == nil || *o.UserID != userID {
			t.Errorf("order %d not attributed to user %d", o.ID, userID)
		}
	}
}
