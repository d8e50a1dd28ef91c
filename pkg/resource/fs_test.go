package resource_test

import (
	"context"
	"io"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/searchkit/pkg/resource"
)

func TestFSLoader(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"certs/ca.pem": &fstest.MapFile{Data: []byte("bundled")},
	}
	ctx := context.Background()

	t.Run("without prefix", func(t *testing.T) {
		t.Parallel()
		l := resource.NewFSLoader(fsys, "")
		assert.True(t, l.Exists(ctx, "certs/ca.pem"))
		assert.True(t, l.Exists(ctx, "/certs/ca.pem"))
		assert.False(t, l.Exists(ctx, "certs"))
		assert.False(t, l.Exists(ctx, "certs/other.pem"))
	})

	t.Run("with prefix", func(t *testing.T) {
		t.Parallel()
		l := resource.NewFSLoader(fsys, "embed:")

		rc, err := l.Open(ctx, "embed:certs/ca.pem")
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "bundled", string(data))
	})

	t.Run("missing and invalid", func(t *testing.T) {
		t.Parallel()
		l := resource.NewFSLoader(fsys, "")

		_, err := l.Open(ctx, "certs/other.pem")
		assert.ErrorIs(t, err, resource.ErrNotFound)

		_, err = l.Open(ctx, "../certs/ca.pem")
		assert.ErrorIs(t, err, resource.ErrInvalidPath)
	})
}
