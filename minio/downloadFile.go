package minio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"bucket_images/load"

	"github.com/minio/minio-go/v7"
)

// DownloadTo streams the object into path, replacing any existing file.
// A partially written file is removed on failure.
func (o *Object) DownloadTo(ctx context.Context, path string) (err error) {
	slog.Debug("starting download", "bucket", o.bucket, "object", o.name, "path", path)

	content, err := o.client.GetObject(ctx, o.bucket, o.name, minio.GetObjectOptions{})
	if err != nil {
		slog.Error("failed to get object", "bucket", o.bucket, "object", o.name, "error", err)
		return fmt.Errorf("failed to get %s/%s: %w", o.bucket, o.name, err)
	}
	defer content.Close()

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		err = errors.Join(err, file.Close())
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	pw := load.NewProgressWriter(file, o.name)
	if _, err := io.Copy(pw, content); err != nil {
		slog.Error("failed to download object", "bucket", o.bucket, "object", o.name, "error", err)
		return fmt.Errorf("failed to download %s/%s: %w", o.bucket, o.name, err)
	}
	pw.Done()

	return nil
}
