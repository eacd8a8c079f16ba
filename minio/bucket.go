package minio

import (
	"context"
	"fmt"
	"log/slog"

	"bucket_images/images"

	"github.com/minio/minio-go/v7"
)

type Bucket struct {
	client *minio.Client
	name   string
}

func (b *Bucket) Name() string {
	return b.name
}

func (b *Bucket) Object(name string) images.Object {
	return &Object{client: b.client, bucket: b.name, name: name}
}

// List walks the whole key space under prefix. Listing metadata is kept on
// each object so ContentType can skip a stat when the store reports it.
func (b *Bucket) List(ctx context.Context, prefix string) ([]images.Object, error) {
	var objects []images.Object

	for info := range b.client.ListObjects(ctx, b.name, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if info.Err != nil {
			slog.Error("failed to list objects", "bucket", b.name, "prefix", prefix, "error", info.Err)
			return nil, fmt.Errorf("failed to list %s/%s: %w", b.name, prefix, info.Err)
		}

		obj := &Object{client: b.client, bucket: b.name, name: info.Key}
		if info.ContentType != "" {
			listed := info
			obj.info = &listed
		}
		objects = append(objects, obj)
	}

	slog.Debug("objects listed", "bucket", b.name, "prefix", prefix, "count", len(objects))
	return objects, nil
}
