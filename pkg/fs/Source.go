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
)

// Source is a specification of what to copy: a single file, a directory
// copied recursively, or an explicit ordered list of paths.  Resolve returns
// the common prefix stripped from every path before re-rooting onto the
// destination, and the concrete ordered list of paths to copy.
type Source interface {
	Resolve(ctx context.Context, fsys FileSystem) (string, []string, error)
}

// FileSource names a single existing file.
type FileSource string

func (s FileSource) Resolve(ctx context.Context, fsys FileSystem) (string, []string, error) {
	fi, err := fsys.Stat(ctx, string(s))
	if err != nil {
		if fsys.IsNotExist(err) {
			return "", nil, fmt.Errorf("source %q: %w", string(s), ErrSourceNotFound)
		}
		return "", nil, fmt.Errorf("error stating source %q: %w", string(s), err)
	}
	if fi.IsDir() {
		return "", nil, fmt.Errorf("source %q is a directory, not a file: %w", string(s), ErrSourceNotFound)
	}
	return fsys.Dir(string(s)), []string{string(s)}, nil
}

// DirectorySource names a directory whose entries are copied recursively.
type DirectorySource string

func (s DirectorySource) Resolve(ctx context.Context, fsys FileSystem) (string, []string, error) {
	fi, err := fsys.Stat(ctx, string(s))
	if err != nil {
		if fsys.IsNotExist(err) {
			return "", nil, fmt.Errorf("source %q: %w", string(s), ErrSourceNotFound)
		}
		return "", nil, fmt.Errorf("error stating source %q: %w", string(s), err)
	}
	if !fi.IsDir() {
		return "", nil, fmt.Errorf("source %q is a file, not a directory: %w", string(s), ErrSourceNotFound)
	}
	names, err := fsys.Walk(ctx, string(s))
	if err != nil {
		return "", nil, fmt.Errorf("error walking source directory %q: %w", string(s), err)
	}
	return string(s), names, nil
}

// ListSource is an explicit ordered list of paths.  The common prefix is the
// deepest path shared by every entry and the entries are copied in the given
// order.
type ListSource []string

func (s ListSource) Resolve(ctx context.Context, fsys FileSystem) (string, []string, error) {
	if len(s) == 0 {
		return "", nil, fmt.Errorf("empty list of sources: %w", ErrSourceNotFound)
	}
	names := make([]string, len(s))
	copy(names, s)
	return CommonPrefix(fsys, names), names, nil
}

// ResolvePath returns the Source for a bare path, detecting whether it names
// a file or a directory.  A path that names neither resolves to nothing and
// no filesystem mutation is performed.
func ResolvePath(ctx context.Context, fsys FileSystem, name string) (Source, error) {
	fi, err := fsys.Stat(ctx, name)
	if err != nil {
		if fsys.IsNotExist(err) {
			return nil, fmt.Errorf("source %q: %w", name, ErrSourceNotFound)
		}
		return nil, fmt.Errorf("error stating source %q: %w", name, err)
	}
	if fi.IsDir() {
		return DirectorySource(name), nil
	}
	return FileSource(name), nil
}
