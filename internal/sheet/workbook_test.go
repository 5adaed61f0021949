package sheet

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

type sheetDef struct {
	name string
	rows [][]any
}

func mkWorkbook(t *testing.T, sheets []sheetDef) []byte {
	t.Helper()
	f := excelize.NewFile()
	for i, def := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), def.name); err != nil {
				t.Fatal(err)
			}
		} else {
			if _, err := f.NewSheet(def.name); err != nil {
				t.Fatal(err)
			}
		}
		for r, rowValues := range def.rows {
			for c, v := range rowValues {
				cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
				if err := f.SetCellValue(def.name, cell, v); err != nil {
					t.Fatal(err)
				}
			}
		}
	}
	buf := bytes.NewBuffer(nil)
	if _, err := f.WriteTo(buf); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestOpenEmptyInput(t *testing.T) {
	if _, err := Open(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v", err)
	}
	if _, err := Open([]byte{}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v", err)
	}
}

func TestOpenUndecodable(t *testing.T) {
	_, err := Open([]byte("definitely not a workbook"))
	if err == nil {
		t.Fatal("expected decode error")
	}
	if !strings.Contains(err.Error(), "decode workbook") {
		t.Fatalf("err = %v", err)
	}
}

func TestSheets(t *testing.T) {
	data := mkWorkbook(t, []sheetDef{
		{name: "Timesheet", rows: [][]any{{"Date", "Hours", "Task"}}},
	})

	wb, err := Open(data)
	if err != nil {
		t.Fatal(err)
	}
	defer wb.Close()

	names := wb.Sheets()
	if len(names) != 1 || names[0] != "Timesheet" {
		t.Fatalf("sheets = %v", names)
	}
}

func TestRowsSheetNotFound(t *testing.T) {
	data := mkWorkbook(t, []sheetDef{
		{name: "January", rows: [][]any{{"Date"}}},
	})

	wb, err := Open(data)
	if err != nil {
		t.Fatal(err)
	}
	defer wb.Close()

	_, err = wb.Rows("February")
	var notFound *SheetNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected SheetNotFoundError, got %v", err)
	}
	if notFound.Name != "February" {
		t.Fatalf("name = %q", notFound.Name)
	}
	if !strings.Contains(err.Error(), "January") {
		t.Fatalf("message %q does not list available sheets", err.Error())
	}
}

func TestRowsCellKinds(t *testing.T) {
	data := mkWorkbook(t, []sheetDef{
		{name: "Sheet1", rows: [][]any{
			{"Date", "Hours", "Task"},
			{time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), 8, "Migration"},
			{"1/3/2025", "6.5", ""},
		}},
	})

	wb, err := Open(data)
	if err != nil {
		t.Fatal(err)
	}
	defer wb.Close()

	rows, err := wb.Rows("")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d", len(rows))
	}

	if rows[0][0].Kind != KindText || rows[0][0].Text != "Date" {
		t.Fatalf("header cell = %+v", rows[0][0])
	}

	// A date cell surfaces as its raw serial number.
	if rows[1][0].Kind != KindNumber {
		t.Fatalf("date cell = %+v", rows[1][0])
	}
	if rows[1][0].Number != 45672 {
		t.Fatalf("serial = %v", rows[1][0].Number)
	}
	if rows[1][1].Kind != KindNumber || rows[1][1].Number != 8 {
		t.Fatalf("hours cell = %+v", rows[1][1])
	}

	if rows[2][0].Kind != KindText || rows[2][0].Text != "1/3/2025" {
		t.Fatalf("text date cell = %+v", rows[2][0])
	}
	// Numeric text round-trips to a number cell.
	if rows[2][1].Kind != KindNumber || rows[2][1].Number != 6.5 {
		t.Fatalf("hours cell = %+v", rows[2][1])
	}
}

func TestCellString(t *testing.T) {
	cases := []struct {
		name string
		cell Cell
		want string
	}{
		{name: "empty", cell: EmptyCell(), want: ""},
		{name: "text", cell: TextCell("Hours"), want: "Hours"},
		{name: "integer number", cell: NumberCell(42), want: "42"},
		{name: "fractional number", cell: NumberCell(6.5), want: "6.5"},
		{name: "date", cell: DateCell(time.Date(2025, time.January, 3, 10, 0, 0, 0, time.UTC)), want: "2025-01-03"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cell.String(); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}
