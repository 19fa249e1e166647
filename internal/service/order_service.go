package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/newshelton/storefront-api/internal/domain"
	"github.com/newshelton/storefront-api/internal/dto"
	"github.com/newshelton/storefront-api/internal/repository"
	"github.com/newshelton/storefront-api/pkg/telemetry"
)

// OrderServiceConfig holds configuration for OrderService
type OrderServiceConfig struct {
	TaxRate         float64
	AllowGuest      bool
	ReferencePrefix string
}

// OrderService defines the interface for checkout operations
type OrderService interface {
	// PlaceOrder persists a checkout and returns the order reference.
	// userID is nil for guest checkout.
	PlaceOrder(ctx context.Context, req *dto.PlaceOrderRequest, userID *int64) (string, error)
	// ListOrdersForUser retrieves a user's order history, newest first
	ListOrdersForUser(ctx context.Context, userID int64) ([]*domain.Order, error)
}

// orderService implements OrderService
type orderService struct {
	orderRepo repository.OrderRepository
	config    *OrderServiceConfig
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo repository.OrderRepository, config *OrderServiceConfig) OrderService {
	if config == nil {
		config = &OrderServiceConfig{AllowGuest: true}
	}
	if config.ReferencePrefix == "" {
		config.ReferencePrefix = "NSH"
	}
	return &orderService{
		orderRepo: orderRepo,
		config:    config,
	}
}

// PlaceOrder computes the totals for the submitted cart and writes
// the order header plus all lines atomically. Cart prices are taken
// as submitted; the order reference is derived from the generated id.
func (s *orderService) PlaceOrder(ctx context.Context, req *dto.PlaceOrderRequest, userID *int64) (string, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.order.place")
	defer span.End()

	span.SetAttributes(attribute.Int("cart_size", len(req.Cart)))

	if userID == nil && !s.config.AllowGuest {
		span.SetStatus(codes.Error, "guest checkout disabled")
		return "", domain.ErrGuestCheckoutDisabled
	}

	totals, err := domain.ComputeTotals(req.Cart, s.config.TaxRate)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	order := &domain.Order{
		UserID:        userID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		Pincode:       req.Pincode,
		PaymentMethod: req.PaymentMethod,
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Total:         totals.Total,
		CreatedAt:     time.Now(),
	}

	items := make([]domain.OrderItem, 0, len(req.Cart))
	for _, line := range req.Cart {
		items = append(items, domain.OrderItem{
			ProductName: line.Name,
			Price:       line.Price,
			Qty:         line.Qty,
		})
	}

	if err := s.orderRepo.CreateWithItems(ctx, order, items); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", domain.ErrOrderPersistence
	}

	ref := order.Reference(s.config.ReferencePrefix)
	span.SetAttributes(attribute.String("order_reference", ref))
	span.SetStatus(codes.Ok, "")
	return ref, nil
}

// ListOrdersForUser retrieves a user's order history, newest first
func (s *orderService) ListOrdersForUser(ctx context.Context, userID int64) ([]*domain.Order, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.order.list_for_user")
	defer span.End()

	span.SetAttributes(attribute.Int64("user_id", userID))

	orders, err := s.orderRepo.ListByUserID(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	return orders, nil
}
