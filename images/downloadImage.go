package images

import (
	"context"
)

// DownloadImage downloads the object named source into destDir and returns
// the path of the written file. The object must exist: a missing object
// yields an error wrapping ErrNotFound before anything is written.
func (d *Downloader) DownloadImage(ctx context.Context, source, destDir string, opts ...Option) (string, error) {
	o := d.options(opts)
	bucket := d.storage.Bucket(o.bucket)

	obj := bucket.Object(source)
	exists, err := obj.Exists(ctx)
	if err != nil {
		return "", newError("downloadImage", bucket.Name(), source, err)
	}
	if !exists {
		return "", newError("downloadImage", bucket.Name(), source, ErrNotFound)
	}

	d.log.Debug("downloading object", "bucket", bucket.Name(), "object", source, "dest", destDir)

	p, err := d.downloadObject(ctx, obj, destDir, o.ext, o.filename)
	if err != nil {
		return "", newError("downloadImage", bucket.Name(), source, err)
	}
	return p, nil
}
