package images

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
)

const dirPerm = 0o755

// downloadObject writes obj into destDir and returns the local path.
//
// With ext or a mappable declared content type the object lands directly on
// destDir/filename.ext. Otherwise it is written to destDir/filename, sniffed
// and renamed. If sniffing finds nothing the unextended file is kept.
func (d *Downloader) downloadObject(ctx context.Context, obj Object, destDir, ext, filename string) (string, error) {
	if err := os.MkdirAll(destDir, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", destDir, err)
	}

	if filename == "" {
		filename = path.Base(obj.Name())
	}
	if filename == "." || filename == ".." || filename == "/" {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, obj.Name())
	}

	extension := extensionFromOverride(ext)
	if extension == "" {
		contentType, err := obj.ContentType(ctx)
		if err != nil {
			return "", err
		}
		extension = extensionForType(contentType)
	}

	if extension != "" {
		destination := filepath.Join(destDir, filename+"."+extension)
		if err := obj.DownloadTo(ctx, destination); err != nil {
			return "", err
		}
		return destination, nil
	}

	origPath := filepath.Join(destDir, filename)
	if err := obj.DownloadTo(ctx, origPath); err != nil {
		return "", err
	}

	extension, err := sniffExtension(origPath)
	if err != nil {
		return "", err
	}
	if extension == "" {
		d.log.Warn("could not determine extension, keeping the original name",
			"object", path.Base(obj.Name()), "filename", filename, "path", origPath)
		return origPath, nil
	}

	destination := filepath.Join(destDir, filename+"."+extension)
	if err := os.Rename(origPath, destination); err != nil {
		return "", fmt.Errorf("failed to rename %s: %w", origPath, err)
	}
	return destination, nil
}
