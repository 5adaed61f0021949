package invoice

import "invoicer/internal/domain"

// Pure totals arithmetic. No rounding happens here; formatting for display
// is the presentation layer's concern.

func ItemTotal(quantity, price float64) float64 {
	return quantity * price
}

func Subtotal(items []domain.InvoiceItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Total
	}
	return sum
}

// Tax computes the tax amount from a percentage rate.
func Tax(subtotal, taxRate float64) float64 {
	return subtotal * taxRate / 100
}

// Total is subtotal plus tax minus discount. A discount larger than the
// subtotal yields a negative total; nothing is clamped.
func Total(subtotal, taxAmount, discount float64) float64 {
	return subtotal + taxAmount - discount
}
