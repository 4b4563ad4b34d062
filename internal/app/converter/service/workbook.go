package converter_service

import (
	"bytes"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// workbook is the decoded source file. Both engines expose sheets as ragged
// string grids; a sheet is read lazily so a broken sheet surfaces where it is
// consumed, not at open time.
type workbook interface {
	SheetNames() []string
	Rows(sheet string) ([][]string, error)
	Close() error
}

// decodeWorkbook picks the engine from the key suffix: legacy BIFF for .xls,
// OOXML for everything else.
func decodeWorkbook(key string, data []byte) (workbook, error) {
	if strings.HasSuffix(key, ".xls") {
		return decodeXLS(data)
	}
	return decodeXLSX(data)
}

type xlsxWorkbook struct {
	f *excelize.File
}

func decodeXLSX(data []byte) (workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &FormatError{Format: "xlsx", Err: err}
	}
	return &xlsxWorkbook{f: f}, nil
}

func (this *xlsxWorkbook) SheetNames() []string {
	return this.f.GetSheetList()
}

func (this *xlsxWorkbook) Rows(sheet string) ([][]string, error) {
	return this.f.GetRows(sheet)
}

func (this *xlsxWorkbook) Close() error {
	return this.f.Close()
}

type xlsWorkbook struct {
	book *xls.WorkBook
}

func decodeXLS(data []byte) (workbook, error) {
	book, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, &FormatError{Format: "xls", Err: err}
	}
	return &xlsWorkbook{book: book}, nil
}

func (this *xlsWorkbook) SheetNames() []string {
	names := make([]string, 0, this.book.NumSheets())
	for i := 0; i < this.book.NumSheets(); i++ {
		if sheet := this.book.GetSheet(i); sheet != nil {
			names = append(names, sheet.Name)
		}
	}
	return names
}

func (this *xlsWorkbook) Rows(sheet string) ([][]string, error) {
	for i := 0; i < this.book.NumSheets(); i++ {
		ws := this.book.GetSheet(i)
		if ws == nil || ws.Name != sheet {
			continue
		}
		var rows [][]string
		for r := 0; r <= int(ws.MaxRow); r++ {
			row := ws.Row(r)
			if row == nil {
				rows = append(rows, nil)
				continue
			}
			// LastCol is one past the last used column.
			cells := make([]string, row.LastCol())
			for c := row.FirstCol(); c < row.LastCol(); c++ {
				cells[c] = row.Col(c)
			}
			rows = append(rows, cells)
		}
		return rows, nil
	}
	return nil, &FormatError{Format: "xls", Err: errSheetMissing(sheet)}
}

func (this *xlsWorkbook) Close() error {
	return nil
}

type errSheetMissing string

func (e errSheetMissing) Error() string {
	return "sheet " + string(e) + " not found"
}
