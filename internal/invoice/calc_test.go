package invoice

import (
	"testing"

	"invoicer/internal/domain"
)

func TestItemTotal(t *testing.T) {
	if got := ItemTotal(6, 100); got != 600 {
		t.Fatalf("got %v", got)
	}
	if got := ItemTotal(0, 100); got != 0 {
		t.Fatalf("got %v", got)
	}
	if got := ItemTotal(2.5, 80); got != 200 {
		t.Fatalf("got %v", got)
	}
}

func TestSubtotal(t *testing.T) {
	items := []domain.InvoiceItem{
		{Total: 600},
		{Total: 150.5},
		{Total: 49.5},
	}
	if got := Subtotal(items); got != 800 {
		t.Fatalf("got %v", got)
	}
	if got := Subtotal(nil); got != 0 {
		t.Fatalf("empty subtotal = %v", got)
	}
}

func TestTax(t *testing.T) {
	cases := []struct {
		name     string
		subtotal float64
		rate     float64
		want     float64
	}{
		{name: "ten percent", subtotal: 600, rate: 10, want: 60},
		{name: "zero rate", subtotal: 1234.56, rate: 0, want: 0},
		{name: "zero subtotal", subtotal: 0, rate: 18, want: 0},
		{name: "fractional rate", subtotal: 1000, rate: 12.5, want: 125},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Tax(tc.subtotal, tc.rate); got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestTotal(t *testing.T) {
	if got := Total(600, 60, 50); got != 610 {
		t.Fatalf("got %v", got)
	}
	// Discounts above the subtotal go negative; nothing clamps.
	if got := Total(100, 0, 150); got != -50 {
		t.Fatalf("got %v", got)
	}
	if got := Total(0, 0, 0); got != 0 {
		t.Fatalf("got %v", got)
	}
}
