// Package billy implements fs.Filesystem on top of go-billy.
package billy

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	parentfs "github.com/keepcoding-tech/libkc-system/fs"
)

// ErrNotDir is returned when a path component expected to be a directory is not one.
var ErrNotDir = errors.New("not a directory")

// FS implements the Filesystem interface using go-billy.
type FS struct {
	fs billy.Filesystem
}

var _ parentfs.Filesystem = (*FS)(nil)

// Create implements Filesystem.Create.
//
//nolint:ireturn // API returns the fs.File interface by design for flexibility.
func (b *FS) Create(name string) (parentfs.File, error) {
	if err := b.checkParent("create", name); err != nil {
		return nil, err
	}
	f, err := b.fs.Create(name)
	if err != nil {
		return nil, fmt.Errorf("billy: create %q: %w", name, err)
	}
	return &File{
		file: f,
		fs:   b,
	}, nil
}

// Exists implements Filesystem.Exists.
func (b *FS) Exists(path string) (bool, error) {
	_, err := b.fs.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("billy: stat %q: %w", path, err)
	}
}

// Mkdir implements Filesystem.Mkdir.
// Only the last element of path is created: the parent must already be a
// directory and path itself must not exist. OS backends create the
// directory with perm in one call; others are checked before delegating
// to MkdirAll.
func (b *FS) Mkdir(path string, perm os.FileMode) error {
	if err := b.checkParent("mkdir", path); err != nil {
		return err
	}

	if mk, ok := b.fs.(dirMaker); ok {
		if err := mk.Mkdir(path, perm); err != nil {
			return fmt.Errorf("billy: mkdir %q: %w", path, err)
		}
		return nil
	}

	_, err := b.fs.Stat(path)
	switch {
	case err == nil:
		return fmt.Errorf("billy: mkdir %q: %w", path, fs.ErrExist)
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("billy: mkdir %q: %w", path, err)
	}

	if err := b.fs.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("billy: mkdir %q: %w", path, err)
	}
	return nil
}

// MkdirAll implements Filesystem.MkdirAll.
func (b *FS) MkdirAll(path string, perm os.FileMode) error {
	if err := b.fs.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("billy: mkdirall %q: %w", path, err)
	}
	return nil
}

// Open implements Filesystem.Open.
//
//nolint:ireturn // API returns the fs.File interface by design for flexibility.
func (b *FS) Open(name string) (parentfs.File, error) {
	f, err := b.fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("billy: open %q: %w", name, err)
	}
	return &File{
		file: f,
		fs:   b,
	}, nil
}

// OpenFile implements Filesystem.OpenFile.
// With O_CREATE the parent directory must already exist, as with os.OpenFile;
// go-billy backends would otherwise create it.
//
//nolint:ireturn // API returns the fs.File interface by design for flexibility.
func (b *FS) OpenFile(name string, flag int, perm os.FileMode) (parentfs.File, error) {
	if flag&os.O_CREATE != 0 {
		if err := b.checkParent("openfile", name); err != nil {
			return nil, err
		}
	}
	f, err := b.fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, fmt.Errorf("billy: openfile %q: %w", name, err)
	}
	return &File{
		file: f,
		fs:   b,
	}, nil
}

// ReadDir implements Filesystem.ReadDir.
func (b *FS) ReadDir(dirname string) ([]os.FileInfo, error) {
	list, err := b.fs.ReadDir(dirname)
	if err != nil {
		return nil, fmt.Errorf("billy: readdir %q: %w", dirname, err)
	}
	return list, nil
}

// ReadFile implements Filesystem.ReadFile.
func (b *FS) ReadFile(path string) ([]byte, error) {
	bts, err := util.ReadFile(b.fs, path)
	if err != nil {
		return nil, fmt.Errorf("billy: readfile %q: %w", path, err)
	}
	return bts, nil
}

// Remove implements Filesystem.Remove.
func (b *FS) Remove(name string) error {
	if err := b.fs.Remove(name); err != nil {
		return fmt.Errorf("billy: remove %q: %w", name, err)
	}
	return nil
}

// RemoveAll implements Filesystem.RemoveAll.
func (b *FS) RemoveAll(path string) error {
	if err := util.RemoveAll(b.fs, path); err != nil {
		return fmt.Errorf("billy: removeall %q: %w", path, err)
	}
	return nil
}

// Stat implements Filesystem.Stat.
func (b *FS) Stat(name string) (os.FileInfo, error) {
	info, err := b.fs.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("billy: stat %q: %w", name, err)
	}
	return info, nil
}

// WriteFile implements Filesystem.WriteFile.
func (b *FS) WriteFile(filename string, data []byte, perm os.FileMode) error {
	if err := util.WriteFile(b.fs, filename, data, perm); err != nil {
		return fmt.Errorf("billy: writefile %q: %w", filename, err)
	}
	return nil
}

// New creates a new FS using the given go-billy filesystem.
func New(fsys billy.Filesystem) *FS {
	return &FS{
		fs: fsys,
	}
}

// NewMemory creates a new in-memory filesystem.
func NewMemory() *FS {
	return &FS{
		fs: memfs.New(),
	}
}

// checkParent fails unless the parent of path is an existing directory.
func (b *FS) checkParent(op, path string) error {
	parent := filepath.Dir(filepath.Clean(path))
	if isRoot(parent) {
		return nil
	}
	info, err := b.fs.Stat(parent)
	if err != nil {
		return fmt.Errorf("billy: %s %q: parent %q: %w", op, path, parent, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("billy: %s %q: parent %q: %w", op, path, parent, ErrNotDir)
	}
	return nil
}

func isRoot(dir string) bool {
	return dir == "." || dir == string(filepath.Separator) || dir == ""
}
