package resource

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
)

// Loader provides read access to named resources.
type Loader interface {
	// Exists reports whether a readable resource is present at path.
	Exists(ctx context.Context, path string) bool
	// Open returns a stream over the resource bytes. The caller closes it.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

type route struct {
	prefix string
	loader Loader
}

// Mux dispatches paths to loaders by longest matching prefix.
// Paths that match no prefix go to the fallback loader.
// The full path, prefix included, is passed to the selected loader.
type Mux struct {
	mu       sync.RWMutex
	routes   []route
	fallback Loader
}

// NewMux returns a Mux that sends unmatched paths to fallback.
// A nil fallback makes unmatched paths report as missing.
func NewMux(fallback Loader) *Mux {
	return &Mux{fallback: fallback}
}

// Handle registers loader for paths starting with prefix.
// Registering the same prefix twice replaces the earlier loader.
func (m *Mux) Handle(prefix string, loader Loader) {
	if prefix == "" || loader == nil {
		panic("resource: Handle requires a non-empty prefix and a non-nil loader")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.routes {
		if m.routes[i].prefix == prefix {
			m.routes[i].loader = loader
			return
		}
	}
	m.routes = append(m.routes, route{prefix: prefix, loader: loader})
	sort.SliceStable(m.routes, func(i, j int) bool {
		return len(m.routes[i].prefix) > len(m.routes[j].prefix)
	})
}

func (m *Mux) match(path string) Loader {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, r := range m.routes {
		if strings.HasPrefix(path, r.prefix) {
			return r.loader
		}
	}
	return m.fallback
}

// Exists implements Loader.
func (m *Mux) Exists(ctx context.Context, path string) bool {
	l := m.match(path)
	if l == nil {
		return false
	}
	return l.Exists(ctx, path)
}

// Open implements Loader.
func (m *Mux) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	l := m.match(path)
	if l == nil {
		return nil, ErrNotFound
	}
	return l.Open(ctx, path)
}
