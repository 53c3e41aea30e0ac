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

// LoadJSON reads the named file and deserializes its contents into v.
func LoadJSON(ctx context.Context, fsys fs.FileSystem, name string, v interface{}) error {
	b, err := fs.ReadFile(ctx, fsys, name)
	if err != nil {
		return err
	}
	if err := sonic.Unmarshal(b, v); err != nil {
		return fmt.Errorf("error parsing json from %q: %w", name, err)
	}
	return nil
}
