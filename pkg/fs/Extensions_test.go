// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navwar/gofile/pkg/fs"
	"github.com/navwar/gofile/pkg/lfs"
)

func TestExtensionsFile(t *testing.T) {
	ctx := context.Background()
	fsys := lfs.NewMemoryFileSystem()

	require.NoError(t, fsys.MkdirAll(ctx, "/d", 0755))
	require.NoError(t, fs.WriteFile(ctx, fsys, "/d/a.png", []byte("a"), 0666))

	extensions, err := fs.Extensions(ctx, fsys, "/d/a.png")
	require.NoError(t, err)
	assert.Equal(t, []string{"png"}, extensions)
}

func TestExtensionsDirectory(t *testing.T) {
	ctx := context.Background()
	fsys := lfs.NewMemoryFileSystem()

	require.NoError(t, fsys.MkdirAll(ctx, "/d/sub", 0755))
	require.NoError(t, fs.WriteFile(ctx, fsys, "/d/a.png", []byte("a"), 0666))
	require.NoError(t, fs.WriteFile(ctx, fsys, "/d/sub/b.png", []byte("b"), 0666))

	extensions, err := fs.Extensions(ctx, fsys, "/d")
	require.NoError(t, err)
	assert.Equal(t, []string{"png"}, extensions)
}

func TestExtensionsDirectoryMixed(t *testing.T) {
	ctx := context.Background()
	fsys := lfs.NewMemoryFileSystem()

	require.NoError(t, fsys.MkdirAll(ctx, "/d", 0755))
	require.NoError(t, fs.WriteFile(ctx, fsys, "/d/a.png", []byte("a"), 0666))
	require.NoError(t, fs.WriteFile(ctx, fsys, "/d/b.jpg", []byte("b"), 0666))

	extensions, err := fs.Extensions(ctx, fsys, "/d")
	require.NoError(t, err)
	assert.Equal(t, []string{"jpg", "png"}, extensions)
}

func TestExtensionsInvalidPath(t *testing.T) {
	ctx := context.Background()
	fsys := lfs.NewMemoryFileSystem()

	_, err := fs.Extensions(ctx, fsys, "/missing")
	assert.ErrorIs(t, err, fs.ErrInvalidPath)
}
