package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore persists uploads under a base directory on disk. Stored paths
// are relative to the base directory and use forward slashes, so they can
// double as URL suffixes under the public uploads route.
type LocalStore struct {
	baseDir string
}

// NewLocalStore creates the base directory if needed.
func NewLocalStore(baseDir string) (*LocalStore, error) {
	if baseDir == "" {
		baseDir = "uploads"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{baseDir: baseDir}, nil
}

// Store writes the reader's contents under folder with a random name that
// keeps the original extension.
func (s *LocalStore) Store(ctx context.Context, folder, filename string, r io.Reader) (string, error) {
	folder = sanitizeFolder(folder)
	dir := filepath.Join(s.baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create folder: %w", err)
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	full := filepath.Join(dir, name)

	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(full)
		return "", fmt.Errorf("write file: %w", err)
	}

	if folder == "" {
		return name, nil
	}
	return folder + "/" + name, nil
}

// Delete removes a previously stored file. A missing file is not an error;
// the record pointing at it is already being removed.
func (s *LocalStore) Delete(ctx context.Context, path string) error {
	clean := sanitizeFolder(path)
	if clean == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(clean)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// BaseDir exposes the root for the static file route.
func (s *LocalStore) BaseDir() string {
	return s.baseDir
}

// sanitizeFolder strips path traversal so stored paths stay inside baseDir.
func sanitizeFolder(folder string) string {
	folder = strings.ReplaceAll(folder, "\\", "/")
	parts := strings.Split(folder, "/")
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" || part == "." || part == ".." {
			continue
		}
		kept = append(kept, part)
	}
	return strings.Join(kept, "/")
}
