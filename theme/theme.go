// Package theme resolves theme names to files in a themes directory.
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Extensions are the file extensions tried when resolving a theme name, in
// order of preference.
var Extensions = []string{".json", ".yaml", ".yml"}

// ErrThemeNotFound is returned when no file matches the requested theme.
var ErrThemeNotFound = errors.New("theme not found")

// Lookup resolves name to a theme file inside dir. A name carrying one of
// the known extensions is checked as given; a bare name is tried with each
// extension in turn.
func Lookup(dir, name string) (string, error) {
	if name == "" {
		return "", errors.New("theme name is empty")
	}

	if hasKnownExtension(name) {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return path, nil
		}
		return "", fmt.Errorf("%w: %s in %s", ErrThemeNotFound, name, dir)
	}

	for _, ext := range Extensions {
		path := filepath.Join(dir, name+ext)
		if fileExists(path) {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w: %s in %s", ErrThemeNotFound, name, dir)
}

// List returns the names of all theme files in dir, without extensions,
// sorted and deduplicated.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading themes directory %s: %w", dir, err)
	}

	seen := map[string]bool{}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !hasKnownExtension(name) {
			continue
		}
		base := strings.TrimSuffix(name, filepath.Ext(name))
		if !seen[base] {
			seen[base] = true
			names = append(names, base)
		}
	}

	sort.Strings(names)
	return names, nil
}

func hasKnownExtension(name string) bool {
	ext := filepath.Ext(name)
	for _, known := range Extensions {
		if ext == known {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
