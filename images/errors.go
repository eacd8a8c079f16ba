package images

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that the requested object is not in the bucket.
	ErrNotFound = errors.New("images: object not found")

	// ErrInvalidPrefix indicates a bulk download prefix without a trailing "/".
	ErrInvalidPrefix = errors.New(`images: prefix must end with "/"`)

	// ErrInvalidKey indicates an object key that cannot be mapped to a path
	// inside the destination directory.
	ErrInvalidKey = errors.New("images: object key escapes destination")
)

// Error carries the operation, bucket and key an error happened on.
type Error struct {
	Op     string
	Bucket string
	Key    string
	Err    error
}

func (e *Error) Error() string {
	if e.Bucket != "" && e.Key != "" {
		return fmt.Sprintf("%s %s/%s: %v", e.Op, e.Bucket, e.Key, e.Err)
	}
	if e.Key != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op, bucket, key string, err error) *Error {
	return &Error{Op: op, Bucket: bucket, Key: key, Err: err}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInvalidPrefix(err error) bool {
	return errors.Is(err, ErrInvalidPrefix)
}
