// Package images downloads image objects from a storage bucket into local
// directories, naming each file with an extension taken from an explicit
// override, the declared content type, or the downloaded bytes.
package images

import (
	"context"
	"log/slog"
)

// Object is a single remote object.
type Object interface {
	Name() string
	Exists(ctx context.Context) (bool, error)
	// ContentType returns the declared content type, or "" when the object
	// has none.
	ContentType(ctx context.Context) (string, error)
	DownloadTo(ctx context.Context, path string) error
}

type Bucket interface {
	Name() string
	Object(name string) Object
	// List returns every object whose name starts with prefix, recursively,
	// in listing order.
	List(ctx context.Context, prefix string) ([]Object, error)
}

type Storage interface {
	Bucket(name string) Bucket
}

// Downloader is safe to reuse across calls but performs every download
// sequentially on the calling goroutine.
type Downloader struct {
	storage       Storage
	defaultBucket string
	log           *slog.Logger
}

func NewDownloader(storage Storage, defaultBucket string, logger *slog.Logger) *Downloader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Downloader{
		storage:       storage,
		defaultBucket: defaultBucket,
		log:           logger,
	}
}

type downloadOptions struct {
	ext      string
	filename string
	bucket   string
}

type Option func(*downloadOptions)

// WithExtension forces the extension of the downloaded file.
func WithExtension(ext string) Option {
	return func(o *downloadOptions) {
		o.ext = ext
	}
}

// WithFilename sets the local base name. It must not carry an extension.
func WithFilename(name string) Option {
	return func(o *downloadOptions) {
		o.filename = name
	}
}

func WithBucket(name string) Option {
	return func(o *downloadOptions) {
		o.bucket = name
	}
}

func (d *Downloader) options(opts []Option) downloadOptions {
	o := downloadOptions{bucket: d.defaultBucket}
	for _, opt := range opts {
		opt(&o)
	}
	if o.bucket == "" {
		o.bucket = d.defaultBucket
	}
	return o
}
