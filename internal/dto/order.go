package dto

import "github.com/newshelton/storefront-api/internal/domain"

// PlaceOrderRequest represents a checkout submission. The cart rides
// along in the request body; there is no server-side cart state.
type PlaceOrderRequest struct {
	FirstName     string            `json:"first_name"`
	LastName      string            `json:"last_name"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	Address       string            `json:"address"`
	City          string            `json:"city"`
	State         string            `json:"state"`
	Pincode       string            `json:"pincode"`
	PaymentMethod string            `json:"payment_method"`
	Cart          []domain.CartLine `json:"cart"`
}

// Validate checks the shipping fields the storefront requires.
// Last name, phone, state and payment method are optional. Cart
// emptiness is checked separately so it gets its own message.
func (r *PlaceOrderRequest) Validate() (bool, string) {
	if r.FirstName == "" || r.Email == "" || r.Address == "" || r.City == "" || r.Pincode == "" {
		return false, "Please fill all required fields."
	}
	return true, ""
}
