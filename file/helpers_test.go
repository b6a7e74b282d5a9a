package file

import (
	iofs "io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	kcerrors "github.com/keepcoding-tech/libkc-system/errors"
	kcfs "github.com/keepcoding-tech/libkc-system/fs"
	"github.com/keepcoding-tech/libkc-system/fs/billy"
	"github.com/keepcoding-tech/libkc-system/logger"
)

// backends returns a fresh filesystem per backend the handle runs on.
func backends() map[string]func(t *testing.T) kcfs.Filesystem {
	return map[string]func(t *testing.T) kcfs.Filesystem{
		"memory": func(*testing.T) kcfs.Filesystem { return billy.NewMemory() },
		"os":     func(t *testing.T) kcfs.Filesystem { return billy.NewOS(t.TempDir()) },
	}
}

func newHandle(t *testing.T, fsys kcfs.Filesystem) (*Handle, *logger.Recorder) {
	t.Helper()
	rec := logger.NewRecorder()
	h, err := New(WithFilesystem(fsys), WithSink(rec))
	require.NoError(t, err)
	t.Cleanup(func() {
		if !h.destroyed {
			_ = h.Destroy()
		}
	})
	return h, rec
}

func requireCode(t *testing.T, want kcerrors.Code, err error) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, want, kcerrors.CodeOf(err), "error: %v", err)
}

func requireReported(t *testing.T, rec *logger.Recorder, sev logger.Severity, code kcerrors.Code) {
	t.Helper()
	last, ok := rec.Last()
	require.True(t, ok, "nothing was reported")
	require.Equal(t, sev, last.Level)
	require.Equal(t, kcerrors.Message(code), last.Message)
	require.Contains(t, last.Args, int(code))
}

// spyFS wraps a filesystem to count descriptor closes and to fake short
// transfers.
type spyFS struct {
	kcfs.Filesystem
	closes     int
	statSize   int64 // overrides File.Stat sizes when non-zero
	shortWrite bool
}

func (s *spyFS) Open(name string) (kcfs.File, error) {
	return s.OpenFile(name, os.O_RDONLY, 0)
}

func (s *spyFS) OpenFile(name string, flag int, perm os.FileMode) (kcfs.File, error) {
	f, err := s.Filesystem.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &spyFile{File: f, fs: s}, nil
}

type spyFile struct {
	kcfs.File
	fs *spyFS
}

func (f *spyFile) Close() error {
	f.fs.closes++
	return f.File.Close()
}

func (f *spyFile) Write(p []byte) (int, error) {
	if f.fs.shortWrite && len(p) > 0 {
		return f.File.Write(p[:len(p)-1])
	}
	return f.File.Write(p)
}

func (f *spyFile) Stat() (iofs.FileInfo, error) {
	info, err := f.File.Stat()
	if err != nil || f.fs.statSize == 0 {
		return info, err
	}
	return sizedInfo{FileInfo: info, size: f.fs.statSize}, nil
}

type sizedInfo struct {
	iofs.FileInfo
	size int64
}

func (i sizedInfo) Size() int64 { return i.size }
