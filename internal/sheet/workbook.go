package sheet

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	ErrEmptyInput = errors.New("timesheet file is empty")
	ErrNoSheets   = errors.New("workbook has no sheets")
)

// SheetNotFoundError reports a requested sheet that is not in the workbook,
// carrying the available names so callers can self-diagnose.
type SheetNotFoundError struct {
	Name      string
	Available []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("sheet %q not found in workbook. Available sheets: %s",
		e.Name, strings.Join(e.Available, ", "))
}

// Workbook wraps a decoded spreadsheet and exposes it as rows of tagged
// cells. Raw cell values are requested from excelize so date cells surface
// as their serial numbers rather than locale-formatted strings.
type Workbook struct {
	file *excelize.File
}

func Open(data []byte) (*Workbook, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode workbook: %w", err)
	}
	if len(file.GetSheetList()) == 0 {
		_ = file.Close()
		return nil, ErrNoSheets
	}
	return &Workbook{file: file}, nil
}

func (w *Workbook) Close() error {
	return w.file.Close()
}

func (w *Workbook) Sheets() []string {
	return w.file.GetSheetList()
}

// Rows returns the cells of the named sheet, or of the first sheet when
// name is blank.
func (w *Workbook) Rows(name string) ([][]Cell, error) {
	sheets := w.file.GetSheetList()
	target := strings.TrimSpace(name)
	if target == "" {
		target = sheets[0]
	} else if !containsSheet(sheets, target) {
		return nil, &SheetNotFoundError{Name: target, Available: sheets}
	}

	raw, err := w.file.GetRows(target, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q rows: %w", target, err)
	}

	rows := make([][]Cell, len(raw))
	for i, rawRow := range raw {
		cells := make([]Cell, len(rawRow))
		for j, value := range rawRow {
			cells[j] = cellFromRaw(value)
		}
		rows[i] = cells
	}
	return rows, nil
}

func containsSheet(sheets []string, name string) bool {
	for _, s := range sheets {
		if s == name {
			return true
		}
	}
	return false
}
