package converter_service

import (
	"errors"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

type sheetSpec struct {
	name  string
	cells [][]string
}

// buildXLSX creates workbook bytes with the given sheets, in order.
func buildXLSX(t *testing.T, sheets ...sheetSpec) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else {
			if _, err := f.NewSheet(s.name); err != nil {
				t.Fatalf("new sheet: %v", err)
			}
		}
		for r, row := range s.cells {
			for c, cell := range row {
				if cell == "" {
					continue
				}
				axis, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					t.Fatalf("cell name: %v", err)
				}
				if err := f.SetCellValue(s.name, axis, cell); err != nil {
					t.Fatalf("set cell: %v", err)
				}
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeWorkbookXLSX(t *testing.T) {
	data := buildXLSX(t,
		sheetSpec{name: "Inventory", cells: [][]string{
			{"Item", "Count"},
			{"Bolt", "40"},
		}},
		sheetSpec{name: "Pricing", cells: [][]string{
			{"Item", "Price"},
			{"Bolt", "0.10"},
		}},
	)

	wb, err := decodeWorkbook("stock.xlsx", data)
	if err != nil {
		t.Fatalf("decodeWorkbook: %v", err)
	}
	defer wb.Close()

	names := wb.SheetNames()
	if want := []string{"Inventory", "Pricing"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("sheet names = %v, want %v", names, want)
	}

	rows, err := wb.Rows("Inventory")
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	want := [][]string{{"Item", "Count"}, {"Bolt", "40"}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %v, want %v", rows, want)
	}
}

func TestDecodeWorkbookBadFormat(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		wantFormat string
	}{
		{name: "garbage xlsx", key: "broken.xlsx", wantFormat: "xlsx"},
		{name: "garbage xls", key: "broken.xls", wantFormat: "xls"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeWorkbook(tt.key, []byte("this is not a spreadsheet"))
			if err == nil {
				t.Fatal("expected decode error")
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("error = %v, want FormatError", err)
			}
			if fe.Format != tt.wantFormat {
				t.Errorf("format = %q, want %q", fe.Format, tt.wantFormat)
			}
		})
	}
}
