package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage stores file bytes on the local filesystem under a root
// directory. Paths are keyed as category/userID/uniqueName by the caller.
type LocalStorage struct {
	root string
}

// NewLocalStorage creates a local storage rooted at the given directory
func NewLocalStorage(root string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{root: root}, nil
}

// Save writes the content to root/relativePath, creating parent directories
func (s *LocalStorage) Save(_ context.Context, relativePath string, content io.Reader) (int64, error) {
	fullPath, err := s.resolve(relativePath)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return 0, fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, content)
	if err != nil {
		return 0, fmt.Errorf("failed to write file: %w", err)
	}
	return written, nil
}

// Remove deletes the stored bytes, tolerating an already-missing file
func (s *LocalStorage) Remove(_ context.Context, relativePath string) error {
	fullPath, err := s.resolve(relativePath)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

// resolve joins the relative path under the root and rejects traversal
func (s *LocalStorage) resolve(relativePath string) (string, error) {
	cleaned := filepath.Clean("/" + relativePath)
	if strings.Contains(cleaned, "..") {
		return "", fmt.Errorf("invalid path: %s", relativePath)
	}
	return filepath.Join(s.root, cleaned), nil
}
