// Package fileutil provides small filesystem helpers shared by the
// conversion pipeline.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// EnsureDir creates dir (and any missing parents) with 0o755 permissions.
// It is idempotent and safe to call concurrently for sibling paths; MkdirAll
// treats an already-existing directory as success.
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", dir, err)
	}
	return nil
}

// Exists reports whether path refers to an existing file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// FileSize returns the size of path in bytes, or 0 when the file cannot be
// inspected.
func FileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return 0
	}
	return info.Size()
}

// IsDir reports whether path exists and is a directory. The returned error
// distinguishes "does not exist" (fs.ErrNotExist) from other stat failures.
func IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, err
		}
		return false, fmt.Errorf("stat %q: %w", path, err)
	}
	return info.IsDir(), nil
}
