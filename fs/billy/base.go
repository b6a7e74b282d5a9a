package billy

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// dirMaker is implemented by backends that create a single directory
// atomically with the requested permission.
type dirMaker interface {
	Mkdir(path string, perm os.FileMode) error
}

// NativeOS is a billy.Filesystem that resolves paths exactly like the os
// package: absolute paths as given, relative ones against the working directory.
type NativeOS struct {
	osfs.ChrootOS
}

// Chroot returns a new filesystem rooted at the provided path.
//
//nolint:ireturn // billy.Filesystem is an interface; signature is dictated by upstream.
func (n *NativeOS) Chroot(path string) (billy.Filesystem, error) {
	return osfs.New(path), nil
}

// Root returns the root path for this filesystem.
func (n *NativeOS) Root() string {
	return "/"
}

// Mkdir creates the directory path with perm, before umask.
func (n *NativeOS) Mkdir(path string, perm os.FileMode) error {
	return os.Mkdir(path, perm)
}

// RootedOS is an os filesystem confined below a root directory.
type RootedOS struct {
	billy.Filesystem
}

// Mkdir creates the directory path below the root with perm, before umask.
// Paths escaping the root fail with billy.ErrCrossedBoundary.
func (r *RootedOS) Mkdir(path string, perm os.FileMode) error {
	clean := filepath.Clean(filepath.FromSlash(path))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return billy.ErrCrossedBoundary
	}
	return os.Mkdir(filepath.Join(r.Root(), clean), perm)
}

// NewNative creates a filesystem that acts like the native filesystem.
// It is the default backend of file handles.
func NewNative() *FS {
	return &FS{
		fs: &NativeOS{},
	}
}

// NewOS creates a new OS filesystem rooted at path.
func NewOS(path string) *FS {
	return &FS{
		fs: &RootedOS{Filesystem: osfs.New(path)},
	}
}
