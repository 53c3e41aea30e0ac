// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package formats

import (
	"context"

	"github.com/navwar/gofile/pkg/fs"
)

// LoadText reads the named file and returns its contents as a string.
func LoadText(ctx context.Context, fsys fs.FileSystem, name string) (string, error) {
	b, err := fs.ReadFile(ctx, fsys, name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
