// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package lfs

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/navwar/gofile/pkg/fs"
)

type LocalFileSystem struct {
	fs afero.Fs
}

func (lfs *LocalFileSystem) Base(name string) string {
	return filepath.Base(name)
}

func (lfs *LocalFileSystem) Chtimes(ctx context.Context, name string, atime time.Time, mtime time.Time) error {
	return lfs.fs.Chtimes(name, atime, mtime)
}

func (lfs *LocalFileSystem) Dir(name string) string {
	return filepath.Dir(name)
}

func (lfs *LocalFileSystem) Ext(name string) string {
	return filepath.Ext(name)
}

func (lfs *LocalFileSystem) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

func (lfs *LocalFileSystem) Join(name ...string) string {
	return filepath.Join(name...)
}

func (lfs *LocalFileSystem) MkdirAll(ctx context.Context, name string, mode os.FileMode) error {
	return lfs.fs.MkdirAll(name, mode)
}

func (lfs *LocalFileSystem) Open(ctx context.Context, name string) (fs.File, error) {
	f, err := lfs.fs.Open(name)
	if err != nil {
		return nil, err
	}
	return NewLocalFile(f), nil
}

func (lfs *LocalFileSystem) OpenFile(ctx context.Context, name string, flag int, perm os.FileMode) (fs.File, error) {
	f, err := lfs.fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return NewLocalFile(f), nil
}

func (lfs *LocalFileSystem) ReadDir(ctx context.Context, name string) ([]fs.DirectoryEntry, error) {
	readDirOutput, err := afero.ReadDir(lfs.fs, name)
	if err != nil {
		return nil, err
	}
	directoryEntries := []fs.DirectoryEntry{}
	for _, fileInfo := range readDirOutput {
		directoryEntries = append(directoryEntries, NewLocalDirectoryEntry(fileInfo))
	}
	return directoryEntries, nil
}

func (lfs *LocalFileSystem) Remove(ctx context.Context, name string) error {
	return lfs.fs.Remove(name)
}

func (lfs *LocalFileSystem) RemoveAll(ctx context.Context, name string) error {
	return lfs.fs.RemoveAll(name)
}

func (lfs *LocalFileSystem) Size(ctx context.Context, name string) (int64, error) {
	fi, err := lfs.fs.Stat(name)
	if err != nil {
		return int64(0), err
	}
	return fi.Size(), nil
}

func (lfs *LocalFileSystem) Split(name string) []string {
	return Split(name)
}

func (lfs *LocalFileSystem) Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	fi, err := lfs.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	return NewLocalFileInfo(fi.Name(), fi.ModTime(), fi.IsDir(), fi.Size()), nil
}

// Walk returns every path under the root, recursively, excluding the root
// itself.  Entries within each directory are visited in lexical order, so
// the same directory contents always list in the same order.
func (lfs *LocalFileSystem) Walk(ctx context.Context, root string) ([]string, error) {
	names := []string{}
	err := afero.Walk(lfs.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		names = append(names, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

func NewLocalFileSystem(rootPath string) *LocalFileSystem {
	return &LocalFileSystem{
		fs: afero.NewBasePathFs(afero.NewOsFs(), rootPath),
	}
}

func NewReadOnlyLocalFileSystem(rootPath string) *LocalFileSystem {
	return &LocalFileSystem{
		fs: afero.NewBasePathFs(afero.NewReadOnlyFs(afero.NewOsFs()), rootPath),
	}
}

// NewMemoryFileSystem returns a filesystem backed entirely by memory,
// useful for tests.
func NewMemoryFileSystem() *LocalFileSystem {
	return &LocalFileSystem{
		fs: afero.NewMemMapFs(),
	}
}
