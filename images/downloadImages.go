package images

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

const separator = "/"

// DownloadImages mirrors every object under prefix into destination,
// keeping the directory layout below the prefix. Extensions are always
// resolved automatically; only WithBucket is honoured.
//
// Objects are downloaded one at a time and the first failure aborts the
// batch. The returned paths follow the listing order.
func (d *Downloader) DownloadImages(ctx context.Context, prefix, destination string, opts ...Option) ([]string, error) {
	if !strings.HasSuffix(prefix, separator) {
		return nil, newError("downloadImages", "", prefix, ErrInvalidPrefix)
	}

	o := d.options(opts)
	bucket := d.storage.Bucket(o.bucket)

	listed, err := bucket.List(ctx, prefix)
	if err != nil {
		return nil, newError("downloadImages", bucket.Name(), prefix, err)
	}

	// Keys ending in "/" are folder markers, not files.
	objects := make([]Object, 0, len(listed))
	for _, obj := range listed {
		if !strings.HasSuffix(obj.Name(), separator) {
			objects = append(objects, obj)
		}
	}

	paths := make([]string, 0, len(objects))
	for i, obj := range objects {
		outDir, err := localDir(destination, prefix, obj.Name())
		if err != nil {
			return nil, newError("downloadImages", bucket.Name(), obj.Name(), err)
		}

		p, err := d.downloadObject(ctx, obj, outDir, "", "")
		if err != nil {
			return nil, newError("downloadImages", bucket.Name(), obj.Name(), err)
		}
		paths = append(paths, p)

		d.log.Info("downloaded", "done", i+1, "total", len(objects), "path", p)
	}

	return paths, nil
}

// localDir returns the directory under destination that key belongs in,
// given that key starts with prefix.
func localDir(destination, prefix, key string) (string, error) {
	rel := strings.TrimPrefix(path.Dir(key)+separator, prefix)
	for _, segment := range strings.Split(rel, separator) {
		if segment == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}
	return filepath.Join(destination, filepath.FromSlash(rel)), nil
}
