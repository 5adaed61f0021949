package timesheet

import (
	"fmt"
	"strings"

	"invoicer/internal/sheet"
)

// ColumnNotFoundError reports a header name that did not resolve, carrying
// every header value with its index so the message is actionable.
type ColumnNotFoundError struct {
	Spec   string
	Header []string
}

func (e *ColumnNotFoundError) Error() string {
	available := make([]string, len(e.Header))
	for i, value := range e.Header {
		available[i] = fmt.Sprintf("%d: %q", i, value)
	}
	return fmt.Sprintf("column %q not found in header row. Available columns: %s",
		e.Spec, strings.Join(available, ", "))
}

// ResolveColumn maps a column specifier to a zero-based index. A single
// letter addresses the column positionally and bypasses the header; any
// other value is matched case-insensitively against the trimmed header
// cells.
func ResolveColumn(spec string, header []sheet.Cell) (int, error) {
	if idx, ok := letterIndex(spec); ok {
		return idx, nil
	}

	want := strings.ToLower(strings.TrimSpace(spec))
	for i, cell := range header {
		if strings.ToLower(strings.TrimSpace(cell.String())) == want {
			return i, nil
		}
	}

	values := make([]string, len(header))
	for i, cell := range header {
		values[i] = cell.String()
	}
	return 0, &ColumnNotFoundError{Spec: spec, Header: values}
}

func letterIndex(spec string) (int, bool) {
	if len(spec) != 1 {
		return 0, false
	}
	switch c := spec[0]; {
	case c >= 'A' && c <= 'Z':
		return int(c - 'A'), true
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), true
	default:
		return 0, false
	}
}
