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

// SaveYAML serializes the value as block-style YAML and writes it to the
// named file.  Struct field order and yaml.MapSlice order are preserved, not
// alphabetized.  The parent directory must already exist unless
// createDirectory is set.
func SaveYAML(ctx context.Context, fsys fs.FileSystem, v interface{}, name string, createDirectory bool) error {
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

	b, err := yaml.MarshalWithOptions(v, yaml.Indent(4))
	if err != nil {
		return fmt.Errorf("error serializing yaml for %q: %w", name, err)
	}

	return fs.WriteFile(ctx, fsys, name, b, 0666)
}
