package converter_service

import (
	"strconv"
	"time"

	"github.com/parsewell/excel-gateway/domain/app"
)

// Date layouts the two decode engines emit for date-formatted cells, plus
// the common human spellings. First match wins.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02-Jan-2006",
	"2-Jan-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"01/02/2006",
	"1/2/06",
	"01-02-06",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// parseScalar tags a raw cell string as one of the Value variants. Empty
// cells are null; date-shaped strings become dates regardless of their input
// formatting; numerics keep their textual form.
func parseScalar(cell string) app.Value {
	if cell == "" {
		return app.NullValue()
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return app.DateValue(t)
		}
	}
	if _, err := strconv.ParseFloat(cell, 64); err == nil {
		return app.NumberValue(cell)
	}
	return app.StringValue(cell)
}
