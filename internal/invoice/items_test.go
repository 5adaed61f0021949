package invoice

import (
	"strings"
	"testing"
	"time"

	"invoicer/internal/timesheet"
)

func bucketResult(entries ...struct {
	date  string
	hours float64
	descs []string
}) *timesheet.Result {
	result := &timesheet.Result{Buckets: map[string]*timesheet.Bucket{}}
	for _, e := range entries {
		result.Dates = append(result.Dates, e.date)
		result.Buckets[e.date] = &timesheet.Bucket{Hours: e.hours, Descriptions: e.descs}
		result.TotalHours += e.hours
	}
	return result
}

type entry = struct {
	date  string
	hours float64
	descs []string
}

func TestBuildItems(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	result := bucketResult(
		entry{date: "2025-01-09", hours: 3, descs: []string{"Review"}},
		entry{date: "2025-01-03", hours: 6, descs: []string{"Design", "Review"}},
	)

	items, month := BuildItems(result, 100, now)
	if len(items) != 2 {
		t.Fatalf("items = %d", len(items))
	}

	// Sorted by date ascending even though buckets arrived out of order.
	if items[0].ID != "2025-01-03" || items[1].ID != "2025-01-09" {
		t.Fatalf("order = %s, %s", items[0].ID, items[1].ID)
	}

	first := items[0]
	if first.Description != "2025-01-03 - Design, Review" {
		t.Fatalf("description = %q", first.Description)
	}
	if first.Quantity != 6 || first.Price != 100 || first.Total != 600 {
		t.Fatalf("item = %+v", first)
	}

	// Month comes from the latest bucket date, not from now.
	if month != "Jan 2025" {
		t.Fatalf("month = %q", month)
	}
}

func TestBuildItemsFallbackDescription(t *testing.T) {
	result := bucketResult(entry{date: "2025-02-01", hours: 2, descs: nil})

	items, _ := BuildItems(result, 50, time.Now())
	if !strings.Contains(items[0].Description, "Work on 2025-02-01") {
		t.Fatalf("description = %q", items[0].Description)
	}
}

func TestBuildItemsEmptyResult(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	items, month := BuildItems(bucketResult(), 100, now)
	if len(items) != 0 {
		t.Fatalf("items = %d", len(items))
	}
	if month != "Mar 2026" {
		t.Fatalf("month = %q", month)
	}
}
