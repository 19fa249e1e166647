package domain

import (
	"errors"
	"testing"
)

func TestComputeTotals(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		_, err := ComputeTotals(nil, 0)
		if !errors.Is(err, ErrEmptyCart) {
			t.Errorf("ComputeTotals() error = %v, want %v", err, ErrEmptyCart)
		}
	})

	t.Run("zero tax rate", func(t *testing.T) {
		lines := []CartLine{
			{Name: "Crew Socks", Price: 199.50, Qty: 2},
			{Name: "Ankle Socks", Price: 99, Qty: 1},
		}

		totals, err := ComputeTotals(lines, 0)
		if err != nil {
			t.Fatalf("ComputeTotals() error = %v", err)
		}

		if totals.Subtotal != 498 {
			t.Errorf("Subtotal = %v, want 498", totals.Subtotal)
		}
		if totals.Tax != 0 {
			t.Errorf("Tax = %v, want 0", totals.Tax)
		}
		if totals.Total != totals.Subtotal+totals.Tax {
			t.Errorf("Total = %v, want Subtotal+Tax = %v", totals.Total, totals.Subtotal+totals.Tax)
		}
	})

	t.Run("tax rounds half up", func(t *testing.T) {
		// 25 * 0.05 = 1.25, rounds to 1
		lines := []CartLine{{Name: "Socks", Price: 25, Qty: 1}}

		totals, err := ComputeTotals(lines, 0.05)
		if err != nil {
			t.Fatalf("ComputeTotals() error = %v", err)
		}
		if totals.Tax != 1 {
			t.Errorf("Tax = %v, want 1", totals.Tax)
		}

		// 10 * 0.05 = 0.5, ties round up
		lines = []CartLine{{Name: "Socks", Price: 10, Qty: 1}}
		totals, err = ComputeTotals(lines, 0.05)
		if err != nil {
			t.Fatalf("ComputeTotals() error = %v", err)
		}
		if totals.Tax != 1 {
			t.Errorf("Tax = %v, want 1 (0.5 rounds up)", totals.Tax)
		}
	})

	t.Run("invalid quantity", func(t *testing.T) {
		lines := []CartLine{{Name: "Socks", Price: 25, Qty: 0}}

		_, err := ComputeTotals(lines, 0)
		ve, ok := AsValidationError(err)
		if !ok {
			t.Fatalf("ComputeTotals() error = %v, want ValidationError", err)
		}
		if ve.Message != "Invalid item quantity in cart." {
			t.Errorf("ValidationError message = %q", ve.Message)
		}
	})

	t.Run("total always equals subtotal plus tax", func(t *testing.T) {
		lines := []CartLine{
			{Name: "A", Price: 33.33, Qty: 3},
			{Name: "B", Price: 0.01, Qty: 7},
		}
		for _, rate := range []float64{0, 0.05, 0.18, 0.25} {
			totals, err := ComputeTotals(lines, rate)
			if err != nil {
				t.Fatalf("ComputeTotals(rate=%v) error = %v", rate, err)
			}
			if totals.Total != totals.Subtotal+totals.Tax {
				t.Errorf("rate %v: Total = %v, want %v", rate, totals.Total, totals.Subtotal+totals.Tax)
			}
		}
	})
}
