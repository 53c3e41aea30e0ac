// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package formats

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/navwar/gofile/pkg/fs"
)

// SaveJSON serializes the value as indented JSON and writes it to the named
// file.  The parent directory must already exist unless createDirectory is
// set.
func SaveJSON(ctx context.Context, fsys fs.FileSystem, v interface{}, name string, createDirectory bool) error {
	if createDirectory {
		if err := fsys.MkdirAll(ctx, fsys.Dir(name), 0755); err != nil {
			return fmt.Errorf("error creating parent directories for %q: %w", name, err)
		}
	} else if _, err := fsys.Stat(ctx, fsys.Dir(name)); err != nil {
		if fsys.IsNotExist(err) {
			return fmt.Errorf("parent directory for %q does not exist and createDirectory is false", name)
		}
		return fmt.Errorf("error stating parent directory for %q: %w", name, err)
	}

	b, err := sonic.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("error serializing json for %q: %w", name, err)
	}

	return fs.WriteFile(ctx, fsys, name, append(b, '\n'), 0666)
}
