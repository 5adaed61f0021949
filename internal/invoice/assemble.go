package invoice

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"invoicer/internal/config"
	"invoicer/internal/domain"

	"github.com/google/uuid"
)

const defaultPaymentDays = 30

var digitsPattern = regexp.MustCompile(`[^0-9]`)

// AssembleParams carry everything the assembler needs besides the parsed
// items. Now is passed in explicitly so invoice numbers and dates are
// reproducible in tests.
type AssembleParams struct {
	Items      []domain.InvoiceItem
	TotalHours float64

	// Month is the label parsed from the timesheet ("Jan 2026"), used in
	// the notes field.
	Month string

	// InvoiceMonth overrides the month suffix of the invoice number. Blank
	// means the previous calendar month relative to Now.
	InvoiceMonth string

	Now    time.Time
	Config config.Config
}

// Assemble combines parsed items, computed totals and configuration into a
// draft invoice. It only formats already-valid data and cannot fail.
func Assemble(p AssembleParams) domain.Invoice {
	inv := p.Config.Invoice

	invoiceMonth := p.InvoiceMonth
	if invoiceMonth == "" {
		invoiceMonth = previousMonth(p.Now)
	}

	subtotal := Subtotal(p.Items)
	taxAmount := Tax(subtotal, inv.TaxRate)
	total := Total(subtotal, taxAmount, inv.Discount)

	date := p.Now.Format(time.DateOnly)
	dueDate := p.Now.AddDate(0, 0, paymentDays(inv.PaymentTerms)).Format(time.DateOnly)

	return domain.Invoice{
		ID:            uuid.NewString(),
		InvoiceNumber: invoiceNumber(inv.Prefix, invoiceMonth, p.Now),
		Date:          date,
		DueDate:       dueDate,
		From:          p.Config.Company,
		To:            p.Config.Client,
		Items:         p.Items,
		Subtotal:      subtotal,
		TaxRate:       inv.TaxRate,
		TaxAmount:     taxAmount,
		Discount:      inv.Discount,
		Total:         total,
		Notes: fmt.Sprintf("Invoice for %s. Total hours: %.2f. Rate: %s %g/hour.",
			p.Month, p.TotalHours, inv.Currency, inv.HourlyRate),
		Status: domain.InvoiceStatusDraft,
	}
}

// invoiceNumber is the prefix, the last four digits of the millisecond
// timestamp, and the month label.
func invoiceNumber(prefix, month string, now time.Time) string {
	stamp := strconv.FormatInt(now.UnixMilli(), 10)
	if len(stamp) > 4 {
		stamp = stamp[len(stamp)-4:]
	}
	return fmt.Sprintf("%s%s-%s", prefix, stamp, month)
}

func previousMonth(now time.Time) string {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return firstOfMonth.AddDate(0, -1, 0).Format("Jan")
}

// paymentDays extracts the day count from a payment-terms string such as
// "Net 30". Terms without a usable number fall back to 30 days.
func paymentDays(terms string) int {
	digits := digitsPattern.ReplaceAllString(terms, "")
	if digits == "" {
		return defaultPaymentDays
	}
	days, err := strconv.Atoi(digits)
	if err != nil || days <= 0 {
		return defaultPaymentDays
	}
	return days
}
