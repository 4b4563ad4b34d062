package converter_event_consumer

import (
	"encoding/json"
	"net/url"

	"github.com/parsewell/excel-gateway/domain/app"
)

// bucketEvent is the S3-style notification MinIO publishes on object
// creation. Only the bucket and object identity matter here.
type bucketEvent struct {
	EventName string `json:"EventName"`
	Records   []struct {
		EventName string `json:"eventName"`
		S3        struct {
			Bucket struct {
				Name string `json:"name"`
			} `json:"bucket"`
			Object struct {
				Key string `json:"key"`
			} `json:"object"`
		} `json:"s3"`
	} `json:"Records"`
}

// DecodeBucketEvent extracts file references from a bucket notification.
// Object keys arrive URL-encoded in the S3 event schema.
func DecodeBucketEvent(body []byte) ([]app.SpreadsheetRef, error) {
	var ev bucketEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return nil, err
	}

	var refs []app.SpreadsheetRef
	for _, rec := range ev.Records {
		key, err := url.QueryUnescape(rec.S3.Object.Key)
		if err != nil {
			key = rec.S3.Object.Key
		}
		if rec.S3.Bucket.Name == "" || key == "" {
			continue
		}
		refs = append(refs, app.SpreadsheetRef{Bucket: rec.S3.Bucket.Name, Key: key})
	}
	return refs, nil
}
