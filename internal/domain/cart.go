package domain

import "math"

// CartLine is one product/quantity/price tuple submitted by the
// client at checkout. Carts live client-side; the server only sees
// them as part of an order submission and never merges duplicate
// product names.
type CartLine struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
}

// Totals holds the money fields computed for a cart.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// ComputeTotals computes subtotal, tax and total for the submitted
// cart. Tax is subtotal * rate rounded half-up to the smallest
// currency unit; total is always subtotal + tax.
//
// Prices are taken from the client as submitted and are not checked
// against the catalog.
func ComputeTotals(lines []CartLine, taxRate float64) (Totals, error) {
	if len(lines) == 0 {
		return Totals{}, ErrEmptyCart
	}

	var subtotal float64
	for _, line := range lines {
		if line.Qty < 1 {
			return Totals{}, NewValidationError("Invalid item quantity in cart.")
		}
		subtotal += line.Price * float64(line.Qty)
	}

	tax := roundHalfUp(subtotal * taxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}, nil
}

// roundHalfUp rounds to the nearest whole currency unit, ties away
// from zero toward positive infinity (0.5 rounds up).
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
