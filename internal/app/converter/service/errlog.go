package converter_service

import (
	"context"
	"log/slog"
	"time"

	"github.com/parsewell/excel-gateway/domain/app"
)

// ErrorLog appends human-readable lines to a per-file error log blob.
type ErrorLog struct {
	store app.BlobStore
	log   *slog.Logger
}

func NewErrorLog(store app.BlobStore, log *slog.Logger) *ErrorLog {
	return &ErrorLog{store: store, log: log}
}

// Append adds one timestamped line, creating the blob if absent and keeping
// prior content. This is a read-modify-write against shared storage: two
// concurrent invocations on the same source can lose lines.
func (this *ErrorLog) Append(ctx context.Context, bucket, key, message string) {
	existing := ""
	if ok, err := this.store.Exists(ctx, bucket, key); err == nil && ok {
		if data, err := this.store.Download(ctx, bucket, key); err == nil {
			existing = string(data)
		}
	}

	line := time.Now().UTC().Format(time.RFC3339) + " " + message + "\n"
	if err := this.store.Upload(ctx, bucket, key, []byte(existing+line), "text/plain"); err != nil {
		this.log.Error("failed to write error log", "bucket", bucket, "key", key, "error", err)
	}
	this.log.Error(message)
}
