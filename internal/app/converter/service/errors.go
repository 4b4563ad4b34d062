package converter_service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the source blob does not exist in the bucket.
	ErrNotFound = errors.New("file does not exist in bucket")

	// ErrEmptyFile indicates the source blob downloaded as zero bytes.
	ErrEmptyFile = errors.New("downloaded file is empty")

	// ErrNoData indicates no sheet survived conversion.
	ErrNoData = errors.New("no valid data found in the Excel file")
)

// FormatError wraps a workbook decode failure for one of the two engines.
type FormatError struct {
	Format string // "xls" or "xlsx"
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid .%s file format: %v", e.Format, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// SheetError marks a single sheet failing conversion, which aborts the whole
// operation. No partial output is written.
type SheetError struct {
	Sheet string
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("error processing sheet %q: %v", e.Sheet, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
