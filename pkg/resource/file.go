package resource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileLoader reads resources from the local filesystem.
// With a base directory set, relative paths resolve against it and nothing
// outside of it can be reached. Without one, paths are used as given.
type FileLoader struct {
	baseDir string
}

// NewFileLoader returns a FileLoader rooted at baseDir ("" for no root).
func NewFileLoader(baseDir string) *FileLoader {
	if baseDir != "" {
		if abs, err := filepath.Abs(baseDir); err == nil {
			baseDir = abs
		}
	}
	return &FileLoader{baseDir: baseDir}
}

func (l *FileLoader) resolve(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", ErrInvalidPath
	}
	if l.baseDir == "" {
		return filepath.Clean(path), nil
	}

	full := filepath.Join(l.baseDir, filepath.Clean("/"+path))
	if full != l.baseDir && !strings.HasPrefix(full, l.baseDir+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	return full, nil
}

// Exists implements Loader. Directories do not count as resources.
func (l *FileLoader) Exists(_ context.Context, path string) bool {
	full, err := l.resolve(path)
	if err != nil {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && !info.IsDir()
}

// Open implements Loader.
func (l *FileLoader) Open(_ context.Context, path string) (io.ReadCloser, error) {
	full, err := l.resolve(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToOpen, err)
	}
	return f, nil
}
