package converter_service

import "strings"

// Sheet names that indicate a template-driven structured report rather than a
// plain table.
var structuredSheetNames = map[string]struct{}{
	"overview":        {},
	"metadata schema": {},
	"report":          {},
}

// detectComplexity decides whether the workbook needs the remote structural
// parser. A file is complex as soon as one sheet has missing cells in its raw
// grid (merged cells and template layouts parse ragged), or carries a known
// structured-report name. The heuristic deliberately does not distinguish
// merged cells from plain sparse data.
func detectComplexity(wb workbook) (bool, string, string, error) {
	for _, name := range wb.SheetNames() {
		rows, err := wb.Rows(name)
		if err != nil {
			return false, "", "", err
		}
		if missingCells(rows) > 0 {
			return true, name, "merged/empty cells", nil
		}
		if _, ok := structuredSheetNames[strings.ToLower(name)]; ok {
			return true, name, "possible structured format", nil
		}
	}
	return false, "", "", nil
}

// missingCells counts empty cells after squaring the grid to its widest row.
func missingCells(rows [][]string) int {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	n := 0
	for _, row := range rows {
		for c := 0; c < width; c++ {
			if c >= len(row) || row[c] == "" {
				n++
			}
		}
	}
	return n
}
