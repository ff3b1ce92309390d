// Package fileutil bundles the small filesystem helpers shared by the
// loaders and the CLI driver: whole-file reads, non-recursive directory
// reads and timestamped output naming.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultTimestampFormat is the layout used by DatetimeFilename when no
// format is supplied.
const DefaultTimestampFormat = "06-01-02-15-04"

// ReadFile reads a whole file as a string.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file %s: %w", path, err)
	}
	return string(data), nil
}

// ReadFilesFromDirectory reads the content of every regular file directly
// under dir (not recursively), in lexical order.
func ReadFilesFromDirectory(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var contents []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		contents = append(contents, data)
	}
	return contents, nil
}

// EnsureParentDirs creates all parent directories of path if they do not
// exist.
func EnsureParentDirs(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create parent directories for %s: %w", path, err)
	}
	return nil
}

// DatetimeFilename generates a filename from the current local time. An
// empty timestampFormat falls back to DefaultTimestampFormat; fileEnding is
// appended verbatim (e.g. ".json"). When outputDir is non-empty the result
// is joined onto it.
func DatetimeFilename(outputDir, timestampFormat, fileEnding string) string {
	if timestampFormat == "" {
		timestampFormat = DefaultTimestampFormat
	}
	name := time.Now().Format(timestampFormat) + fileEnding
	if outputDir == "" {
		return name
	}
	return filepath.Join(outputDir, name)
}
