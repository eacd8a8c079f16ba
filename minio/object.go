package minio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/minio/minio-go/v7"
)

type Object struct {
	client *minio.Client
	bucket string
	name   string
	info   *minio.ObjectInfo
}

func (o *Object) Name() string {
	return o.name
}

func (o *Object) Exists(ctx context.Context) (bool, error) {
	_, err := o.stat(ctx)
	if err == nil {
		return true, nil
	}
	if isNotFound(err) {
		return false, nil
	}
	return false, err
}

func (o *Object) ContentType(ctx context.Context) (string, error) {
	info, err := o.stat(ctx)
	if err != nil {
		return "", err
	}
	return info.ContentType, nil
}

func (o *Object) stat(ctx context.Context) (*minio.ObjectInfo, error) {
	if o.info != nil {
		return o.info, nil
	}

	info, err := o.client.StatObject(ctx, o.bucket, o.name, minio.StatObjectOptions{})
	if err != nil {
		if !isNotFound(err) {
			slog.Error("failed to stat object", "bucket", o.bucket, "object", o.name, "error", err)
		}
		return nil, fmt.Errorf("failed to stat %s/%s: %w", o.bucket, o.name, err)
	}

	o.info = &info
	return o.info, nil
}

func isNotFound(err error) bool {
	var resp minio.ErrorResponse
	if !errors.As(err, &resp) {
		return false
	}
	switch resp.Code {
	case "NoSuchKey", "NotFound", "NoSuchObject":
		return true
	}
	return resp.StatusCode == http.StatusNotFound && resp.Code != "NoSuchBucket"
}
