package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/newshelton/storefront-api/internal/domain"
	"github.com/newshelton/storefront-api/internal/dto"
	"github.com/newshelton/storefront-api/internal/middleware"
	"github.com/newshelton/storefront-api/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// mockOrderService is a mock implementation of service.OrderService
type mockOrderService struct {
	placedWith *int64
	placeRef   string
	placeErr   error
	orders     []*domain.Order
	listErr    error
}

func (s *mockOrderService) PlaceOrder(ctx context.Context, req *dto.PlaceOrderRequest, userID *int64) (string, error) {
	s.placedWith = userID
	if s.placeErr != nil {
		return "", s.placeErr
	}
	return s.placeRef, nil
}

func (s *mockOrderService) ListOrdersForUser(ctx context.Context, userID int64) ([]*domain.Order, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.orders, nil
}

const testCookieName = "shelton_session"

func newOrderRouter(svc *mockOrderService, sessions *session.Manager) *gin.Engine {
	r := gin.New()
	h := NewOrderHandler(svc)
	r.POST("/api/orders", middleware.OptionalSession(sessions, testCookieName), h.PlaceOrder)
	r.GET("/api/my-orders", middleware.RequireSession(sessions, testCookieName), h.MyOrders)
	return r
}

func postJSON(r *gin.Engine, path string, body any, cookie string) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return body
}

func validCheckout() map[string]any {
	return map[string]any{
		"first_name": "Asha",
		"email":      "asha@example.com",
		"address":    "12 Mill Road",
		"city":       "Lahore",
		"pincode":    "54000",
		"cart": []map[string]any{
			{"name": "Crew Socks", "price": 199.50, "qty": 2},
		},
	}
}

func TestOrderHandler_PlaceOrder(t *testing.T) {
	sessions := session.NewManager(session.NewMemoryStore(), "test-secret", time.Hour)

	t.Run("successful guest order", func(t *testing.T) {
		svc := &mockOrderService{placeRef: "NSH000001"}
		r := newOrderRouter(svc, sessions)

		w := postJSON(r, "/api/orders", validCheckout(), "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		body := decodeBody(t, w)
		if body["success"] != true {
			t.Errorf("success = %v, want true", body["success"])
		}
		if body["order_id"] != "NSH000001" {
			t.Errorf("order_id = %v, want NSH000001", body["order_id"])
		}
		if body["message"] != "Order placed successfully!" {
			t.Errorf("message = %v", body["message"])
		}
		if svc.placedWith != nil {
			t.Error("guest order was attributed to a user")
		}
	})

	t.Run("session attributes the order", func(t *testing.T) {
		svc := &mockOrderService{placeRef: "NSH000002"}
		r := newOrderRouter(svc, sessions)

		token, err := sessions.Create(context.Background(), session.Data{UserID: 42, Name: "Asha", Email: "asha@example.com"})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		w := postJSON(r, "/api/orders", validCheckout(), token)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if svc.placedWith == nil || *svc.placedWith != 42 {
			t.Errorf("order attributed to %v, want 42", svc.placedWith)
		}
	})

	t.Run("missing fields reported as 200 with success false", func(t *testing.T) {
		svc := &mockOrderService{placeRef: "NSH000003"}
		r := newOrderRouter(svc, sessions)

		payload := validCheckout()
		delete(payload, "pincode")

		w := postJSON(r, "/api/orders", payload, "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (validation failures are not HTTP errors)", w.Code)
		}

		body := decodeBody(t, w)
		if body["success"] != false {
			t.Errorf("success = %v, want false", body["success"])
		}
		if body["message"] != "Please fill all required fields." {
			t.Errorf("message = %v", body["message"])
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		svc := &mockOrderService{}
		r := newOrderRouter(svc, sessions)

		payload := validCheckout()
		payload["cart"] = []map[string]any{}

		w := postJSON(r, "/api/orders", payload, "")
		body := decodeBody(t, w)
		if w.Code != http.StatusOK || body["success"] != false {
			t.Errorf("status = %d, success = %v; want 200/false", w.Code, body["success"])
		}
		if body["message"] != "Your cart is empty." {
			t.Errorf("message = %v", body["message"])
		}
	})

	t.Run("persistence failure", func(t *testing.T) {
		svc := &mockOrderService{placeErr: domain.ErrOrderPersistence}
		r := newOrderRouter(svc, sessions)

		w := postJSON(r, "/api/orders", validCheckout(), "")
		body := decodeBody(t, w)
		if w.Code != http.StatusOK || body["success"] != false {
			t.Errorf("status = %d, success = %v; want 200/false", w.Code, body["success"])
		}
		if body["message"] != "Could not place order. Please try again." {
			t.Errorf("message = %v", body["message"])
		}
	})
}

func TestOrderHandler_MyOrders(t *testing.T) {
	sessions := session.NewManager(session.NewMemoryStore(), "test-secret", time.Hour)

	t.Run("requires a session", func(t *testing.T) {
		svc := &mockOrderService{}
		r := newOrderRouter(svc, sessions)

		req := httptest.NewRequest(http.MethodGet, "/api/my-orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
		body := decodeBody(t, w)
		if body["message"] != "Please login first." {
			t.Errorf("message = %v", body["message"])
		}
	})

	t.Run("returns the user's orders", func(t *testing.T) {
		userID := int64(9)
		svc := &mockOrderService{orders: []*domain.Order{
			{ID: 2, UserID: &userID, Total: 500},
			{ID: 1, UserID: &userID, Total: 300},
		}}
		r := newOrderRouter(svc, sessions)

		token, err := sessions.Create(context.Background(), session.Data{UserID: userID, Name: "Asha", Email: "asha@example.com"})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/api/my-orders", nil)
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		body := decodeBody(t, w)
		if body["success"] != true {
			t.Errorf("success = %v, want true", body["success"])
		}
		orders, ok := body["orders"].([]any)
		if !ok || len(orders) != 2 {
			t.Errorf("orders = %v, want 2 entries", body["orders"])
		}
	})

	t.Run("fetch failure", func(t *testing.T) {
		svc := &mockOrderService{listErr: errors.New("connection refused")}
		r := newOrderRouter(svc, sessions)

		token, _ := sessions.Create(context.Background(), session.Data{UserID: 9})
		req := httptest.NewRequest(http.MethodGet, "/api/my-orders", nil)
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		body := decodeBody(t, w)
		if w.Code != http.StatusOK || body["success"] != false {
			t.Errorf("status = %d, success = %v; want 200/false", w.Code, body["success"])
		}
		if body["message"] != "Could not fetch orders." {
			t.Errorf("message = %v", body["message"])
		}
	})
}
