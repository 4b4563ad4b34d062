package app

import (
	"encoding/json"
	"testing"
	"time"
)

func TestValueMarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{name: "null", value: NullValue(), want: `null`},
		{name: "string", value: StringValue("hello"), want: `"hello"`},
		{name: "number keeps raw form", value: NumberValue("123.450"), want: `"123.450"`},
		{
			name:  "date renders YYYY-MM-DD",
			value: DateValue(time.Date(2025, time.February, 10, 15, 4, 5, 0, time.UTC)),
			want:  `"2025-02-10"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.value)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("marshal = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestValueUnmarshalJSON(t *testing.T) {
	var v Value
	if err := json.Unmarshal([]byte(`null`), &v); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !v.IsNull() {
		t.Error("expected null value")
	}

	if err := json.Unmarshal([]byte(`"Doc1"`), &v); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if v.Kind() != KindString || v.String() != "Doc1" {
		t.Errorf("value = %v %q, want string Doc1", v.Kind(), v.String())
	}

	if err := json.Unmarshal([]byte(`42`), &v); err == nil {
		t.Error("expected error for non-string JSON scalar")
	}
}

func TestRecordJSONKeepsInsertionOrder(t *testing.T) {
	rec := NewRecord()
	rec.Set("B", StringValue("1"))
	rec.Set("A", StringValue("2"))

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := `{"B":"1","A":"2"}`; string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}
}
