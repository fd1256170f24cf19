package objectstore

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/jsamuelsen11/game-narrative-script/internal/platform/config"
)

// object is a seekable handle on one stored object.
type object interface {
	io.ReadSeeker
	io.Closer
}

// bucket is the slice of the S3 API the store needs. minioBucket is the
// production implementation; tests substitute an in-memory one.
type bucket interface {
	name() string
	putFile(ctx context.Context, key, path, contentType string) (int64, error)
	open(ctx context.Context, key string) (object, int64, error)
	exists(ctx context.Context) (bool, error)
}

type minioBucket struct {
	client *minio.Client
	bucket string
}

func newMinioBucket(cfg *config.ObjectStoreConfig) (*minioBucket, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating minio client for %s: %w", cfg.Endpoint, err)
	}
	return &minioBucket{client: client, bucket: cfg.Bucket}, nil
}

func (b *minioBucket) name() string {
	return b.bucket
}

func (b *minioBucket) putFile(ctx context.Context, key, path, contentType string) (int64, error) {
	info, err := b.client.FPutObject(ctx, b.bucket, key, path, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return 0, mapError(key, err)
	}
	return info.Size, nil
}

// open returns a lazily fetching handle. GetObject itself does no I/O, so
// Stat is what surfaces a missing key.
func (b *minioBucket) open(ctx context.Context, key string) (object, int64, error) {
	obj, err := b.client.GetObject(ctx, b.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, mapError(key, err)
	}
	info, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		return nil, 0, mapError(key, err)
	}
	return obj, info.Size, nil
}

func (b *minioBucket) exists(ctx context.Context) (bool, error) {
	ok, err := b.client.BucketExists(ctx, b.bucket)
	if err != nil {
		return false, mapError(b.bucket, err)
	}
	return ok, nil
}

func mapError(key string, err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return fmt.Errorf("%w: %s: %w", ErrNotFound, key, err)
	default:
		return err
	}
}
