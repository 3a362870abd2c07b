// Package fsops is the filesystem edge of the service: target-name
// validation and the write primitives used by both the HTTP handler and
// the local rename engine.
package fsops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DirPerm is used when creating output directories on demand.
	DirPerm os.FileMode = 0755
	// FilePerm is used for written upload files.
	FilePerm os.FileMode = 0644
)

// ValidateFilename rejects anything that is not a bare filename. The
// target name becomes a single path component under the output
// directory, so separators, traversal tokens and NUL bytes are refused.
func ValidateFilename(name string) error {
	if name == "" {
		return fmt.Errorf("empty target filename")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("invalid target filename %q", name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("target filename %q must not contain path separators", name)
	}
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("target filename contains NUL byte")
	}
	return nil
}

// EnsureDir creates dir and any missing parents. It is a no-op when the
// directory already exists.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}

// WriteFile validates name, joins it with dir and writes data there,
// overwriting any existing file. It returns the full path written.
func WriteFile(dir, name string, data []byte) (string, error) {
	if err := ValidateFilename(name); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, FilePerm); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
