package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/newshelton/storefront-api/internal/domain"
	"github.com/newshelton/storefront-api/internal/dto"
	"github.com/newshelton/storefront-api/internal/service"
	"github.com/newshelton/storefront-api/pkg/response"
)

// OrderHandler handles checkout HTTP requests
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// PlaceOrder handles a checkout submission. Runs behind
// OptionalSession: a live session attributes the order to the user,
// otherwise it is a guest order.
// POST /api/orders
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "Please fill all required fields.")
		return
	}

	if valid, msg := req.Validate(); !valid {
		response.Fail(c, msg)
		return
	}
	if len(req.Cart) == 0 {
		response.Fail(c, "Your cart is empty.")
		return
	}

	var userID *int64
	if data, ok := sessionData(c); ok {
		userID = &data.UserID
	}

	ref, err := h.orderService.PlaceOrder(c.Request.Context(), &req, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyCart):
			response.Fail(c, "Your cart is empty.")
		case errors.Is(err, domain.ErrGuestCheckoutDisabled):
			response.Fail(c, "Please login to place an order.")
		default:
			if ve, ok := domain.AsValidationError(err); ok {
				response.Fail(c, ve.Message)
				return
			}
			response.Fail(c, "Could not place order. Please try again.")
		}
		return
	}

	response.OK(c, gin.H{
		"order_id": ref,
		"message":  "Order placed successfully!",
	})
}

// MyOrders lists the logged-in user's orders, newest first. Runs
// behind RequireSession.
// GET /api/my-orders
func (h *OrderHandler) MyOrders(c *gin.Context) {
	data, ok := sessionData(c)
	if !ok {
		response.Unauthorized(c, "Please login first.")
		return
	}

	orders, err := h.orderService.ListOrdersForUser(c.Request.Context(), data.UserID)
	if err != nil {
		response.Fail(c, "Could not fetch orders.")
		return
	}

	response.OK(c, gin.H{"orders": orders})
}
