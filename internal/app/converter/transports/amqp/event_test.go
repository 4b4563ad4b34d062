package converter_event_consumer

import (
	"reflect"
	"testing"

	"github.com/parsewell/excel-gateway/domain/app"
)

func TestDecodeBucketEvent(t *testing.T) {
	body := `{
		"EventName": "s3:ObjectCreated:Put",
		"Key": "uploads/folder/report.xlsx",
		"Records": [
			{
				"eventName": "s3:ObjectCreated:Put",
				"s3": {
					"bucket": {"name": "uploads"},
					"object": {"key": "folder%2Freport.xlsx"}
				}
			}
		]
	}`

	refs, err := DecodeBucketEvent([]byte(body))
	if err != nil {
		t.Fatalf("DecodeBucketEvent: %v", err)
	}

	want := []app.SpreadsheetRef{{Bucket: "uploads", Key: "folder/report.xlsx"}}
	if !reflect.DeepEqual(refs, want) {
		t.Errorf("refs = %+v, want %+v", refs, want)
	}
}

func TestDecodeBucketEventMalformed(t *testing.T) {
	if _, err := DecodeBucketEvent([]byte("not json")); err == nil {
		t.Error("expected decode error")
	}
}

func TestDecodeBucketEventNoRecords(t *testing.T) {
	refs, err := DecodeBucketEvent([]byte(`{"EventName": "s3:BucketCreated"}`))
	if err != nil {
		t.Fatalf("DecodeBucketEvent: %v", err)
	}
	if len(refs) != 0 {
		t.Errorf("refs = %+v, want none", refs)
	}
}

func TestSpreadsheetFilter(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{key: "report.xlsx", want: true},
		{key: "legacy.xls", want: true},
		{key: "image.png", want: false},
		{key: "readme.txt", want: false},
	}

	for _, tt := range tests {
		ref := app.SpreadsheetRef{Bucket: "uploads", Key: tt.key}
		if got := ref.IsSpreadsheet(); got != tt.want {
			t.Errorf("IsSpreadsheet(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
