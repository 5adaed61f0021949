package timesheet

import (
	"log/slog"
	"strconv"
	"strings"

	"invoicer/internal/sheet"
)

// Options configure one aggregation pass. Column specifiers accept either a
// single letter or a header name. StartRow is 1-based, matching how rows
// are numbered in spreadsheet applications.
type Options struct {
	DateColumn        string
	HoursColumn       string
	DescriptionColumn string
	StartRow          int

	// Logger receives row-level skip diagnostics. Nil disables them.
	Logger *slog.Logger
}

// Bucket accumulates the hours and distinct descriptions of one date.
// Descriptions keep first-seen order.
type Bucket struct {
	Hours        float64
	Descriptions []string
}

// Result is one aggregation outcome: buckets keyed by ISO date with the
// insertion order kept explicitly, plus diagnostic counters.
type Result struct {
	Dates   []string
	Buckets map[string]*Bucket

	TotalHours    float64
	RowsProcessed int
	RowsSkipped   int
}

func (r *Result) bucket(date string) *Bucket {
	if b, ok := r.Buckets[date]; ok {
		return b
	}
	b := &Bucket{}
	r.Buckets[date] = b
	r.Dates = append(r.Dates, date)
	return b
}

// Aggregate walks data rows from StartRow, drops every row lacking a valid
// date, a non-empty description, or positive hours, and groups the rest by
// normalized date. Row-level problems never abort the pass; only an
// unresolvable column does.
func Aggregate(rows [][]sheet.Cell, opts Options) (*Result, error) {
	var header []sheet.Cell
	if len(rows) > 0 {
		header = rows[0]
	}

	dateIdx, err := ResolveColumn(opts.DateColumn, header)
	if err != nil {
		return nil, err
	}
	hoursIdx, err := ResolveColumn(opts.HoursColumn, header)
	if err != nil {
		return nil, err
	}
	descIdx, err := ResolveColumn(opts.DescriptionColumn, header)
	if err != nil {
		return nil, err
	}

	startRow := opts.StartRow
	if startRow < 1 {
		startRow = 1
	}

	result := &Result{Buckets: make(map[string]*Bucket)}
	for i := startRow - 1; i < len(rows); i++ {
		row := rows[i]

		date, ok := ClassifyDate(cellAt(row, dateIdx))
		if !ok {
			result.RowsSkipped++
			logSkip(opts.Logger, i+1, "no valid date")
			continue
		}

		description := strings.TrimSpace(cellAt(row, descIdx).String())
		if description == "" {
			result.RowsSkipped++
			logSkip(opts.Logger, i+1, "empty description")
			continue
		}

		hours, ok := parseHours(cellAt(row, hoursIdx))
		if !ok || hours <= 0 {
			result.RowsSkipped++
			logSkip(opts.Logger, i+1, "hours not a positive number")
			continue
		}

		result.RowsProcessed++
		result.TotalHours += hours

		b := result.bucket(date)
		b.Hours += hours
		if !containsString(b.Descriptions, description) {
			b.Descriptions = append(b.Descriptions, description)
		}
	}

	return result, nil
}

func cellAt(row []sheet.Cell, idx int) sheet.Cell {
	if idx < 0 || idx >= len(row) {
		return sheet.EmptyCell()
	}
	return row[idx]
}

func parseHours(c sheet.Cell) (float64, bool) {
	switch c.Kind {
	case sheet.KindNumber:
		return c.Number, true
	case sheet.KindText:
		value := strings.ReplaceAll(strings.TrimSpace(c.Text), ",", "")
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

func logSkip(logger *slog.Logger, rowNumber int, reason string) {
	if logger == nil {
		return
	}
	logger.Debug("skipping timesheet row", "row", rowNumber, "reason", reason)
}
