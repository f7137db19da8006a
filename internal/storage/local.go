package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sbilibin2017/studydesk/internal/logger"
)

// LocalStorage keeps artifacts as files in a single directory.
type LocalStorage struct {
	dir string
}

// NewLocalStorage creates dir when missing and returns a storage rooted at it.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload folder: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

// Save writes data to a new file named name. It never overwrites: an existing
// file yields ErrObjectExists. The returned size is taken from the written file.
func (s *LocalStorage) Save(ctx context.Context, name string, data []byte) (string, int64, error) {
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return "", 0, ErrObjectExists
	}
	if err != nil {
		return "", 0, err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return "", 0, err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", 0, err
	}

	info, err := os.Stat(path)
	if err != nil {
		os.Remove(path)
		return "", 0, err
	}

	logger.Log.Infow("artifact saved", "path", path, "size", info.Size())

	return path, info.Size(), nil
}

// Read returns the content of the artifact at path.
func (s *LocalStorage) Read(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrObjectNotFound
	}
	return data, err
}

// Delete removes the artifact at path. A missing file is not an error.
func (s *LocalStorage) Delete(ctx context.Context, path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	logger.Log.Infow("artifact deleted", "path", path, "error", err)

	return nil
}
