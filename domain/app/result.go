package app

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record is one row of a sheet: column name -> cell value, in column order.
// Ordered maps keep the JSON object keys in insertion order.
type Record = orderedmap.OrderedMap[string, Value]

// ConversionResult maps sheet names, in workbook order, to their records.
// This is the payload persisted to the destination blob.
type ConversionResult = orderedmap.OrderedMap[string, []*Record]

func NewRecord() *Record {
	return orderedmap.New[string, Value]()
}

func NewConversionResult() *ConversionResult {
	return orderedmap.New[string, []*Record]()
}
