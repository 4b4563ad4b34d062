package app

import (
	"context"
	"strings"
)

// SpreadsheetRef identifies a source file in object storage.
type SpreadsheetRef struct {
	Bucket string
	Key    string
}

// IsSpreadsheet reports whether the key names a file this service handles.
func (r SpreadsheetRef) IsSpreadsheet() bool {
	return strings.HasSuffix(r.Key, ".xlsx") || strings.HasSuffix(r.Key, ".xls")
}

// IsLegacy reports whether the key names a legacy BIFF (.xls) file.
func (r SpreadsheetRef) IsLegacy() bool {
	return strings.HasSuffix(r.Key, ".xls")
}

// DestinationKey is the key the converted JSON document is written to.
func (r SpreadsheetRef) DestinationKey() string {
	return r.replaceSuffix(".json")
}

// ErrorLogKey is the key of the per-file error log.
func (r SpreadsheetRef) ErrorLogKey() string {
	return r.replaceSuffix("_error.log")
}

func (r SpreadsheetRef) replaceSuffix(repl string) string {
	for _, suffix := range []string{".xlsx", ".xls"} {
		if strings.HasSuffix(r.Key, suffix) {
			return strings.TrimSuffix(r.Key, suffix) + repl
		}
	}
	return r.Key + repl
}

// ConversionService converts one stored spreadsheet into a JSON document.
//
// The returned string is the outcome message for the caller. Failures are
// handled internally (appended to the per-file error log) and reported
// through the message, never as an error; the error return is reserved for
// the transport boundary.
type ConversionService interface {
	Convert(ctx context.Context, ref SpreadsheetRef) (string, error)
}
