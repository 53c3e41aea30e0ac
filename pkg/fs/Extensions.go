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
	"sort"
	"strings"
)

// Extensions returns the extensions found at the path, without the leading
// dot.  For a file the result has exactly one element, which may be the empty
// string.  For a directory the result holds every distinct extension of the
// files under it, recursively, in sorted order.
func Extensions(ctx context.Context, fsys FileSystem, name string) ([]string, error) {
	fi, err := fsys.Stat(ctx, name)
	if err != nil {
		if fsys.IsNotExist(err) {
			return nil, fmt.Errorf("%q: %w", name, ErrInvalidPath)
		}
		return nil, fmt.Errorf("error stating %q: %w", name, err)
	}

	if !fi.IsDir() {
		return []string{strings.TrimPrefix(fsys.Ext(name), ".")}, nil
	}

	names, err := fsys.Walk(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error walking directory %q: %w", name, err)
	}

	set := map[string]struct{}{}
	for _, n := range names {
		nameFileInfo, err := fsys.Stat(ctx, n)
		if err != nil {
			return nil, fmt.Errorf("error stating %q: %w", n, err)
		}
		if nameFileInfo.IsDir() {
			continue
		}
		set[strings.TrimPrefix(fsys.Ext(n), ".")] = struct{}{}
	}

	extensions := make([]string, 0, len(set))
	for extension := range set {
		extensions = append(extensions, extension)
	}
	sort.Strings(extensions)
	return extensions, nil
}
