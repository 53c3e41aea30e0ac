// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"context"
	"fmt"
	"io"
)

// ReadFile returns the contents of the named file.
func ReadFile(ctx context.Context, fsys FileSystem, name string) ([]byte, error) {
	if _, err := fsys.Stat(ctx, name); err != nil {
		if fsys.IsNotExist(err) {
			return nil, fmt.Errorf("file %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("error stating file %q: %w", name, err)
	}

	f, err := fsys.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error opening file at %q: %w", name, err)
	}

	b, err := io.ReadAll(f)
	if err != nil {
		_ = f.Close() // silently close file
		return nil, fmt.Errorf("error reading file at %q: %w", name, err)
	}

	err = f.Close()
	if err != nil {
		return nil, fmt.Errorf("error closing file after reading: %w", err)
	}

	return b, nil
}
