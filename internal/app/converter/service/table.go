package converter_service

import (
	"fmt"

	"github.com/parsewell/excel-gateway/domain/app"
)

// buildTable turns one sheet's raw grid into a record sequence. Row 0 is the
// header; columns whose data cells are all null are dropped, then rows that
// are all null across the kept columns are dropped. A nil result means the
// sheet is empty and must be skipped.
func buildTable(rows [][]string) []*app.Record {
	if len(rows) == 0 {
		return nil
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return nil
	}

	header := make([]string, width)
	for c := 0; c < width; c++ {
		name := ""
		if c < len(rows[0]) {
			name = rows[0][c]
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", c)
		}
		header[c] = name
	}

	data := rows[1:]
	grid := make([][]app.Value, len(data))
	for r, row := range data {
		vals := make([]app.Value, width)
		for c := 0; c < width; c++ {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			vals[c] = parseScalar(cell)
		}
		grid[r] = vals
	}

	keep := make([]bool, width)
	for c := 0; c < width; c++ {
		for r := range grid {
			if !grid[r][c].IsNull() {
				keep[c] = true
				break
			}
		}
	}

	var records []*app.Record
	for _, vals := range grid {
		empty := true
		for c := 0; c < width; c++ {
			if keep[c] && !vals[c].IsNull() {
				empty = false
				break
			}
		}
		if empty {
			continue
		}
		rec := app.NewRecord()
		for c := 0; c < width; c++ {
			if keep[c] {
				rec.Set(header[c], vals[c])
			}
		}
		records = append(records, rec)
	}
	return records
}
