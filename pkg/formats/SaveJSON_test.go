// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package formats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navwar/gofile/pkg/fs"
	"github.com/navwar/gofile/pkg/lfs"
)

type configFixture struct {
	Name    string            `json:"name" yaml:"name"`
	Count   int               `json:"count" yaml:"count"`
	Tags    []string          `json:"tags" yaml:"tags"`
	Options map[string]string `json:"options" yaml:"options"`
}

func TestSaveJSONRoundTrip(t *testing.T) {
	ctx := context.Background()
	fsys := lfs.NewMemoryFileSystem()

	require.NoError(t, fsys.MkdirAll(ctx, "/d", 0755))

	in := configFixture{
		Name:  "example",
		Count: 3,
		Tags:  []string{"a", "b"},
		Options: map[string]string{
			"verbose": "true",
		},
	}
	require.NoError(t, SaveJSON(ctx, fsys, in, "/d/config.json", false))

	out := configFixture{}
	require.NoError(t, LoadJSON(ctx, fsys, "/d/config.json", &out))
	assert.Equal(t, in, out)
}

func TestSaveJSONIndented(t *testing.T) {
	ctx := context.Background()
	fsys := lfs.NewMemoryFileSystem()

	require.NoError(t, fsys.MkdirAll(ctx, "/d", 0755))
	require.NoError(t, SaveJSON(ctx, fsys, map[string]string{"a": "b"}, "/d/x.json", false))

	text, err := LoadText(ctx, fsys, "/d/x.json")
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"a\": \"b\"\n}\n", text)
}

func TestSaveJSONCreateDirectory(t *testing.T) {
	ctx := context.Background()
	fsys := lfs.NewMemoryFileSystem()

	err := SaveJSON(ctx, fsys, map[string]string{"a": "b"}, "/missing/x.json", false)
	assert.Error(t, err)

	err = SaveJSON(ctx, fsys, map[string]string{"a": "b"}, "/missing/x.json", true)
	require.NoError(t, err)

	out := map[string]string{}
	require.NoError(t, LoadJSON(ctx, fsys, "/missing/x.json", &out))
	assert.Equal(t, map[string]string{"a": "b"}, out)
}

func TestLoadJSONNotFound(t *testing.T) {
	ctx := context.Background()
	fsys := lfs.NewMemoryFileSystem()

	out := map[string]string{}
	err := LoadJSON(ctx, fsys, "/missing.json", &out)
	assert.ErrorIs(t, err, fs.ErrNotFound)
}
