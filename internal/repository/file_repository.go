package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
)

// FileRepository keeps one JSON file per key under a data directory.
// No caching: every call hits the file, and flock serializes
// concurrent processes working on the same directory (shared for reads,
// exclusive for writes).
type FileRepository struct {
	dir string
}

// NewFileRepository creates dir if needed and returns a repository rooted there.
func NewFileRepository(dir string) (*FileRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %q: %w", dir, err)
	}
	return &FileRepository{dir: dir}, nil
}

func (r *FileRepository) path(key string) string {
	return filepath.Join(r.dir, key+".json")
}

// Load reads the file for key. A missing or empty file is reported as
// ok == false.
// Lock (shared) → Read → Unlock
func (r *FileRepository) Load(_ context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := r.withFileLock(key, os.O_RDONLY, syscall.LOCK_SH, func(file *os.File) error {
		var err error
		data, err = io.ReadAll(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", key, err)
		}
		return nil
	})
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, false, nil
	case err != nil:
		return nil, false, err
	case len(data) == 0:
		return nil, false, nil
	}
	return data, true, nil
}

// Save replaces the file contents for key.
// Lock → Truncate → Write → Unlock
func (r *FileRepository) Save(_ context.Context, key string, value []byte) error {
	return r.withFileLock(key, os.O_RDWR|os.O_CREATE, syscall.LOCK_EX, func(file *os.File) error {
		if err := file.Truncate(0); err != nil {
			return fmt.Errorf("truncate %s: %w", key, err)
		}
		if _, err := file.Seek(0, 0); err != nil {
			return fmt.Errorf("seek %s: %w", key, err)
		}
		if _, err := file.Write(value); err != nil {
			return fmt.Errorf("write %s: %w", key, err)
		}
		return nil
	})
}

// Erase deletes the file for key; a missing file is not an error.
func (r *FileRepository) Erase(_ context.Context, key string) error {
	if err := os.Remove(r.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// withFileLock executes fn with the file for key opened with flag and
// locked in the given flock mode.
func (r *FileRepository) withFileLock(key string, flag, how int, fn func(*os.File) error) error {
	file, err := os.OpenFile(r.path(key), flag, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", key, err)
	}
	defer file.Close()

	if err := syscall.Flock(int(file.Fd()), how); err != nil {
		return fmt.Errorf("lock %s: %w", key, err)
	}
	defer syscall.Flock(int(file.Fd()), syscall.LOCK_UN)

	return fn(file)
}
