package images

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtensionFromOverride(t *testing.T) {
	assert.Equal(t, "png", extensionFromOverride(".png"))
	assert.Equal(t, "tar.gz", extensionFromOverride("tar.gz"))
	assert.Equal(t, "JPG", extensionFromOverride("JPG"))
	assert.Equal(t, "", extensionFromOverride("."))
	assert.Equal(t, "", extensionFromOverride(""))
}

func TestExtensionForType(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
	}{
		{"image/jpeg", "jpg"},
		{"image/png", "png"},
		{"IMAGE/PNG", "png"},
		{"image/gif", "gif"},
		{"image/webp", "webp"},
		{"image/png; charset=binary", "png"},
		{"text/plain; charset=utf-8", "txt"},
		{"application/octet-stream", ""},
		{"application/x-definitely-unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.want, extensionForType(tt.contentType))
		})
	}
}

func TestSniffExtension(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"png", pngBytes, "png"},
		{"jpeg", jpegBytes, "jpg"},
		{"unknown binary", junkBytes, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := filepath.Join(dir, tt.name)
			require.NoError(t, os.WriteFile(p, tt.data, 0o644))

			got, err := sniffExtension(p)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSniffExtension_MissingFile(t *testing.T) {
	_, err := sniffExtension(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
