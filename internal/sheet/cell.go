package sheet

import (
	"strconv"
	"time"
)

type CellKind int

const (
	KindEmpty CellKind = iota
	KindText
	KindNumber
	KindDate
)

// Cell is one spreadsheet cell as a tagged variant. The parsing core works
// on cells instead of excelize types so it can be exercised without a
// workbook.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Time   time.Time
}

func EmptyCell() Cell { return Cell{Kind: KindEmpty} }

func TextCell(s string) Cell { return Cell{Kind: KindText, Text: s} }

func NumberCell(v float64) Cell { return Cell{Kind: KindNumber, Number: v} }

func DateCell(t time.Time) Cell { return Cell{Kind: KindDate, Time: t} }

// String renders the cell for header matching and diagnostics.
func (c Cell) String() string {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case KindDate:
		return c.Time.Format(time.DateOnly)
	default:
		return ""
	}
}

// cellFromRaw converts a raw excelize cell value. Numeric raw values
// (including date serials, which excelize reports as numbers in raw mode)
// become number cells, everything else non-empty stays text.
func cellFromRaw(raw string) Cell {
	if raw == "" {
		return EmptyCell()
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return NumberCell(v)
	}
	return TextCell(raw)
}
