package resource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
)

// FSLoader reads resources from an fs.FS such as an embed.FS.
// An optional prefix (for example "embed:") is stripped before lookup so the
// loader can be mounted on a Mux.
type FSLoader struct {
	fsys   fs.FS
	prefix string
}

// NewFSLoader returns a loader over fsys. Pass the Mux prefix it is mounted
// under, or "" when used directly.
func NewFSLoader(fsys fs.FS, prefix string) *FSLoader {
	return &FSLoader{fsys: fsys, prefix: prefix}
}

func (l *FSLoader) name(path string) (string, error) {
	name := strings.TrimPrefix(strings.TrimPrefix(path, l.prefix), "/")
	if !fs.ValidPath(name) || name == "." {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	return name, nil
}

// Exists implements Loader.
func (l *FSLoader) Exists(_ context.Context, path string) bool {
	name, err := l.name(path)
	if err != nil {
		return false
	}
	info, err := fs.Stat(l.fsys, name)
	return err == nil && !info.IsDir()
}

// Open implements Loader.
func (l *FSLoader) Open(_ context.Context, path string) (io.ReadCloser, error) {
	name, err := l.name(path)
	if err != nil {
		return nil, err
	}
	f, err := l.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToOpen, err)
	}
	return f, nil
}
