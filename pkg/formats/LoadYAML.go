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

	"github.com/goccy/go-yaml"

	"github.com/navwar/gofile/pkg/fs"
)

// LoadYAML reads the named file and deserializes its contents into v.
func LoadYAML(ctx context.Context, fsys fs.FileSystem, name string, v interface{}) error {
	b, err := fs.ReadFile(ctx, fsys, name)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, v); err != nil {
		return fmt.Errorf("error parsing yaml from %q: %w", name, err)
	}
	return nil
}
