package helpers

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir and any missing parents. An empty or "." dir is a
// no-op.
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil && !os.IsExist(err) {
		return fmt.Errorf("error creating directory %s: %w", dir, err)
	}
	return nil
}

// SaveFile writes content to destPath, creating missing parent directories.
// An existing file is overwritten in full.
func SaveFile(destPath string, content []byte) error {
	if err := EnsureDir(filepath.Dir(destPath)); err != nil {
		return fmt.Errorf("error creating output folder for %s: %w", destPath, err)
	}

	if err := os.WriteFile(destPath, content, 0o644); err != nil {
		return fmt.Errorf("error saving file %s: %w", destPath, err)
	}

	return nil
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
