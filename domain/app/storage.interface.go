package app

import "context"

// BlobStore is the object-storage collaborator. Implementations must treat a
// missing object as (false, nil) from Exists, not as an error.
type BlobStore interface {
	Exists(ctx context.Context, bucket, key string) (bool, error)
	Download(ctx context.Context, bucket, key string) ([]byte, error)
	Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error
}
