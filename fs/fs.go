package fs

import "os"

// Filesystem is the set of storage operations a file handle needs.
// Errors must wrap the platform cause so errors.Is(err, fs.ErrNotExist)
// and errors.Is(err, fs.ErrExist) keep working. Mkdir and OpenFile with
// os.O_CREATE never create missing parent directories.
type Filesystem interface {
	Create(name string) (File, error)
	Exists(path string) (bool, error)
	Mkdir(path string, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	Open(name string) (File, error)
	OpenFile(name string, flag int, perm os.FileMode) (File, error)
	ReadDir(dirname string) ([]os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	Remove(name string) error
	RemoveAll(path string) error
	Stat(name string) (os.FileInfo, error)
	WriteFile(filename string, data []byte, perm os.FileMode) error
}
