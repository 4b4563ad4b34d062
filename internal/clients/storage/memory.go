package storage_client

import (
	"context"
	"fmt"
	"sync"

	"github.com/parsewell/excel-gateway/domain/app"
)

// MemoryStore is an in-process BlobStore used by tests.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

var _ app.BlobStore = &MemoryStore{}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (this *MemoryStore) Exists(ctx context.Context, bucket, key string) (bool, error) {
	this.mu.RLock()
	defer this.mu.RUnlock()

	_, ok := this.blobs[bucket+"/"+key]
	return ok, nil
}

func (this *MemoryStore) Download(ctx context.Context, bucket, key string) ([]byte, error) {
	this.mu.RLock()
	defer this.mu.RUnlock()

	data, ok := this.blobs[bucket+"/"+key]
	if !ok {
		return nil, fmt.Errorf("object %s/%s not found", bucket, key)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (this *MemoryStore) Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	this.mu.Lock()
	defer this.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	this.blobs[bucket+"/"+key] = stored
	return nil
}
