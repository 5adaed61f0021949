package invoice

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"invoicer/internal/domain"
	"invoicer/internal/timesheet"
)

const monthLabelLayout = "Jan 2006"

// BuildItems turns date buckets into invoice line items sorted by date
// ascending, and derives the month label from the latest bucket date. With
// no buckets the label falls back to the current month.
func BuildItems(result *timesheet.Result, hourlyRate float64, now time.Time) ([]domain.InvoiceItem, string) {
	items := make([]domain.InvoiceItem, 0, len(result.Dates))
	for _, date := range result.Dates {
		bucket := result.Buckets[date]

		description := strings.Join(bucket.Descriptions, ", ")
		if description == "" {
			description = fmt.Sprintf("Work on %s", date)
		}

		items = append(items, domain.InvoiceItem{
			ID:          date,
			Description: fmt.Sprintf("%s - %s", date, description),
			Quantity:    bucket.Hours,
			Price:       hourlyRate,
			Total:       ItemTotal(bucket.Hours, hourlyRate),
		})
	}

	// Item IDs are ISO dates, so lexicographic order is date order.
	slices.SortFunc(items, func(a, b domain.InvoiceItem) int {
		return strings.Compare(a.ID, b.ID)
	})

	return items, monthLabel(items, now)
}

func monthLabel(items []domain.InvoiceItem, now time.Time) string {
	if len(items) == 0 {
		return now.Format(monthLabelLayout)
	}
	latest := items[len(items)-1].ID
	t, err := time.Parse(time.DateOnly, latest)
	if err != nil {
		return now.Format(monthLabelLayout)
	}
	return t.Format(monthLabelLayout)
}
