package storage_client

import (
	"bytes"
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/parsewell/excel-gateway/domain/app"
	"github.com/parsewell/excel-gateway/internal/config"
)

func New(cfg *config.Config) (*minio.Client, error) {
	return minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
}

// MinioStore adapts a minio client to the BlobStore contract.
type MinioStore struct {
	client *minio.Client
}

var _ app.BlobStore = &MinioStore{}

func NewStore(client *minio.Client) *MinioStore {
	return &MinioStore{client: client}
}

func (this *MinioStore) Exists(ctx context.Context, bucket, key string) (bool, error) {
	_, err := this.client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (this *MinioStore) Download(ctx context.Context, bucket, key string) ([]byte, error) {
	obj, err := this.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	return io.ReadAll(obj)
}

func (this *MinioStore) Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	_, err := this.client.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	return err
}
