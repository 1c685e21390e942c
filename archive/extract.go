// Package archive unpacks repository zipballs.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"repo-mirror/helpers"
)

// ExtractZip unpacks a GitHub zipball into destDir. The archive's single
// top-level "owner-repo-sha/" directory is stripped so the repository
// contents land directly under destDir.
func ExtractZip(data []byte, destDir string) error {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("opening zip archive: %w", err)
	}

	if err := helpers.EnsureDir(destDir); err != nil {
		return err
	}

	for _, file := range reader.File {
		rel := stripArchiveRoot(file.Name)
		if rel == "" {
			continue
		}

		destPath := filepath.Join(destDir, filepath.FromSlash(rel))
		// Reject entries that would escape destDir.
		if !strings.HasPrefix(destPath, filepath.Clean(destDir)+string(filepath.Separator)) {
			return fmt.Errorf("archive entry %s escapes destination directory", file.Name)
		}

		if file.FileInfo().IsDir() {
			if err := helpers.EnsureDir(destPath); err != nil {
				return err
			}
			continue
		}

		if err := extractFile(file, destPath); err != nil {
			return err
		}
	}

	return nil
}

func extractFile(file *zip.File, destPath string) error {
	rc, err := file.Open()
	if err != nil {
		return fmt.Errorf("opening archive entry %s: %w", file.Name, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("reading archive entry %s: %w", file.Name, err)
	}

	return helpers.SaveFile(destPath, content)
}

// stripArchiveRoot drops the zipball's top-level directory from an entry
// name. The root entry itself maps to "".
func stripArchiveRoot(name string) string {
	name = strings.TrimPrefix(name, "/")
	idx := strings.Index(name, "/")
	if idx < 0 {
		return ""
	}
	return strings.TrimSuffix(name[idx+1:], "/")
}
