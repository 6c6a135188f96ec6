// Package storage manages the upload area: the fixed directory holding
// all document artifacts.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrNotFound means the requested name does not resolve to a file inside
// the upload area.
var ErrNotFound = errors.New("file not found in upload area")

// UploadStore reads and writes files under a fixed root directory.
type UploadStore struct {
	root string
}

// NewUploadStore creates the upload area if it does not exist.
func NewUploadStore(root string) (*UploadStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload area: %w", err)
	}
	return &UploadStore{root: abs}, nil
}

func (s *UploadStore) Root() string {
	return s.root
}

// SanitizeFilename strips directory components and replaces characters
// that could escape the upload area. Two uploads that sanitize to the
// same name overwrite one another; stored names are not uniquified.
func SanitizeFilename(name string) string {
	// Browsers on Windows send backslash-separated paths.
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	out := strings.Trim(b.String(), ".")
	if out == "" {
		out = "file"
	}
	return out
}

// Save writes the content under the sanitized name, overwriting any
// existing file of that name, and returns the stored path.
func (s *UploadStore) Save(name string, content io.Reader) (string, error) {
	dst := filepath.Join(s.root, SanitizeFilename(name))
	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return dst, nil
}

// Resolve maps a requested filename to a path strictly inside the upload
// area. Parent-directory segments and unknown names yield ErrNotFound.
func (s *UploadStore) Resolve(name string) (string, error) {
	p := filepath.Join(s.root, filepath.FromSlash(name))

	rel, err := filepath.Rel(s.root, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", ErrNotFound
	}

	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		return "", ErrNotFound
	}
	return p, nil
}

// Remove deletes the file at path. A missing file is not an error:
// legacy records may reference paths that never had a backing file.
func (s *UploadStore) Remove(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return os.Remove(path)
}
