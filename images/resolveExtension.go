package images

import (
	"fmt"
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

func extensionFromOverride(ext string) string {
	return strings.Trim(ext, ".")
}

// extensionForType maps a content type to a lower-cased extension without the
// leading dot. It returns "" when the type has no known extension.
func extensionForType(contentType string) string {
	if contentType == "" {
		return ""
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
	}
	mediaType = strings.ToLower(mediaType)

	if mt := mimetype.Lookup(mediaType); mt != nil && mt.Extension() != "" {
		return strings.ToLower(strings.TrimPrefix(mt.Extension(), "."))
	}

	exts, err := mime.ExtensionsByType(mediaType)
	if err != nil || len(exts) == 0 {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(exts[0], "."))
}

// sniffExtension detects the content type of the file at path from its magic
// bytes and maps it to an extension.
func sniffExtension(path string) (string, error) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to detect content type of %s: %w", path, err)
	}
	return extensionForType(mt.String()), nil
}
