package app

import (
	"encoding/json"
	"time"
)

// ValueKind tags the scalar variants a cell value can carry.
type ValueKind uint8

const (
	KindNull ValueKind = iota
	KindString
	KindNumber
	KindDate
)

// Value is a tagged cell scalar. Rendering into the destination JSON:
// dates as "YYYY-MM-DD" strings, nulls as JSON null, everything else as its
// string representation.
type Value struct {
	kind ValueKind
	raw  string
	date time.Time
}

func NullValue() Value {
	return Value{kind: KindNull}
}

func StringValue(s string) Value {
	return Value{kind: KindString, raw: s}
}

// NumberValue keeps the original textual form so rendering never reformats
// what the cell contained.
func NumberValue(raw string) Value {
	return Value{kind: KindNumber, raw: raw}
}

func DateValue(t time.Time) Value {
	return Value{kind: KindDate, date: t}
}

func (v Value) Kind() ValueKind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == KindNull
}

func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindDate:
		return v.date.Format("2006-01-02")
	default:
		return v.raw
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindNull {
		return []byte("null"), nil
	}
	return json.Marshal(v.String())
}

func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = NullValue()
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*v = StringValue(s)
	return nil
}
