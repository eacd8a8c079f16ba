package images

import (
	"context"
	"os"
	"strings"
)

// fakeObject is an in-memory Object. Fields ending in Err are returned by
// the matching method when set.
type fakeObject struct {
	name        string
	contentType string
	data        []byte
	missing     bool

	existsErr      error
	contentTypeErr error
	downloadErr    error

	downloads []string
}

func (o *fakeObject) Name() string {
	return o.name
}

func (o *fakeObject) Exists(ctx context.Context) (bool, error) {
	if o.existsErr != nil {
		return false, o.existsErr
	}
	return !o.missing, nil
}

func (o *fakeObject) ContentType(ctx context.Context) (string, error) {
	if o.contentTypeErr != nil {
		return "", o.contentTypeErr
	}
	return o.contentType, nil
}

func (o *fakeObject) DownloadTo(ctx context.Context, path string) error {
	if o.downloadErr != nil {
		return o.downloadErr
	}
	o.downloads = append(o.downloads, path)
	return os.WriteFile(path, o.data, 0o644)
}

type fakeBucket struct {
	name      string
	objects   []*fakeObject
	listErr   error
	listCalls int
}

func (b *fakeBucket) Name() string {
	return b.name
}

func (b *fakeBucket) Object(name string) Object {
	for _, o := range b.objects {
		if o.name == name {
			return o
		}
	}
	return &fakeObject{name: name, missing: true}
}

func (b *fakeBucket) List(ctx context.Context, prefix string) ([]Object, error) {
	b.listCalls++
	if b.listErr != nil {
		return nil, b.listErr
	}
	var out []Object
	for _, o := range b.objects {
		if strings.HasPrefix(o.name, prefix) {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeStorage struct {
	buckets   map[string]*fakeBucket
	requested []string
}

func newFakeStorage(buckets ...*fakeBucket) *fakeStorage {
	s := &fakeStorage{buckets: map[string]*fakeBucket{}}
	for _, b := range buckets {
		s.buckets[b.name] = b
	}
	return s
}

func (s *fakeStorage) Bucket(name string) Bucket {
	s.requested = append(s.requested, name)
	b, ok := s.buckets[name]
	if !ok {
		b = &fakeBucket{name: name}
		s.buckets[name] = b
	}
	return b
}

var (
	pngBytes  = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)
	jpegBytes = append([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}, make([]byte, 32)...)
	junkBytes = []byte{0x7e, 0x00, 0x01, 0xfe, 0x00, 0x00, 0x02, 0x11, 0x9c, 0x00, 0x85, 0x03}
)
