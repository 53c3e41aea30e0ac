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
	"os"
)

// WriteFile writes data to the named file, truncating any existing contents.
func WriteFile(ctx context.Context, fsys FileSystem, name string, data []byte, perm os.FileMode) error {
	f, err := fsys.OpenFile(ctx, name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("error creating file at %q: %w", name, err)
	}

	_, err = f.Write(data)
	if err != nil {
		_ = f.Close() // silently close file
		return fmt.Errorf("error writing file at %q: %w", name, err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("error closing file after writing: %w", err)
	}

	return nil
}
