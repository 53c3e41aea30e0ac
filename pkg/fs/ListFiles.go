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
	"path"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/maruel/natural"
)

// ListFiles lists every entry under the directory, recursively.  Without an
// extension filter the results include files and directories in natural
// order, so embedded numbers compare numerically instead of lexically.  With
// a filter only files whose relative path matches **/*.<extension> are
// returned, in walk order.
func ListFiles(ctx context.Context, input *ListFilesInput) ([]string, error) {
	fi, err := input.FileSystem.Stat(ctx, input.Directory)
	if err != nil {
		if input.FileSystem.IsNotExist(err) {
			return nil, fmt.Errorf("%q: %w", input.Directory, ErrNotDirectory)
		}
		return nil, fmt.Errorf("error stating directory %q: %w", input.Directory, err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%q: %w", input.Directory, ErrNotDirectory)
	}

	names, err := input.FileSystem.Walk(ctx, input.Directory)
	if err != nil {
		return nil, fmt.Errorf("error walking directory %q: %w", input.Directory, err)
	}

	if input.Extension == "" {
		sort.Slice(names, func(i int, j int) bool {
			return natural.Less(names[i], names[j])
		})
		return names, nil
	}

	pattern := "**/*." + input.Extension
	directoryParts := input.FileSystem.Split(input.Directory)
	matched := []string{}
	for _, name := range names {
		relative := path.Join(input.FileSystem.Split(name)[len(directoryParts):]...)
		ok, err := doublestar.Match(pattern, relative)
		if err != nil {
			return nil, fmt.Errorf("error matching pattern %q: %w", pattern, err)
		}
		if !ok {
			continue
		}
		nameFileInfo, err := input.FileSystem.Stat(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("error stating %q: %w", name, err)
		}
		if nameFileInfo.IsDir() {
			continue
		}
		matched = append(matched, name)
	}
	return matched, nil
}
