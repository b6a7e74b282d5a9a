package fstest

import (
	"bytes"
	"errors"
	iofs "io/fs"
	"os"
	"testing"

	"github.com/keepcoding-tech/libkc-system/fs"
)

// TestOpenFileFlags tests the OpenFile flag combinations file handles map
// their modes onto.
func TestOpenFileFlags(t *testing.T, filesystem fs.Filesystem) {
	const name = "flags.txt"

	t.Run("ExclusiveCreate", func(t *testing.T) {
		f, err := filesystem.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
		if err != nil {
			t.Fatalf("OpenFile(O_EXCL) on absent file: got error %v, want nil", err)
		}
		writeAndClose(t, f, []byte("first"))

		_, err = filesystem.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
		if !errors.Is(err, iofs.ErrExist) {
			t.Errorf("OpenFile(O_EXCL) on existing file: got error %v, want fs.ErrExist", err)
		}
	})

	t.Run("Append", func(t *testing.T) {
		f, err := filesystem.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			t.Fatalf("OpenFile(O_APPEND): got error %v, want nil", err)
		}
		writeAndClose(t, f, []byte("+second"))
		expectContent(t, filesystem, name, []byte("first+second"))
	})

	t.Run("Truncate", func(t *testing.T) {
		f, err := filesystem.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
		if err != nil {
			t.Fatalf("OpenFile(O_TRUNC): got error %v, want nil", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close(): got error %v, want nil", err)
		}
		expectContent(t, filesystem, name, []byte{})
	})

	t.Run("ReadOnlyAbsent", func(t *testing.T) {
		_, err := filesystem.OpenFile("absent.txt", os.O_RDONLY, 0)
		if !errors.Is(err, iofs.ErrNotExist) {
			t.Errorf("OpenFile(O_RDONLY) on absent file: got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("ReadWriteAbsent", func(t *testing.T) {
		_, err := filesystem.OpenFile("absent.txt", os.O_RDWR, 0)
		if !errors.Is(err, iofs.ErrNotExist) {
			t.Errorf("OpenFile(O_RDWR) on absent file: got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("CreateMissingParent", func(t *testing.T) {
		for _, flag := range []int{
			os.O_WRONLY | os.O_CREATE | os.O_EXCL,
			os.O_WRONLY | os.O_CREATE | os.O_TRUNC,
			os.O_RDWR | os.O_CREATE | os.O_APPEND,
		} {
			_, err := filesystem.OpenFile("missing/child.txt", flag, 0666)
			if !errors.Is(err, iofs.ErrNotExist) {
				t.Errorf("OpenFile(%#x) below absent directory: got error %v, want fs.ErrNotExist", flag, err)
			}
		}
		if exists, _ := filesystem.Exists("missing"); exists {
			t.Errorf("OpenFile(O_CREATE) created the missing parent")
		}
	})

	t.Run("WriteOnReadOnlyFails", func(t *testing.T) {
		f, err := filesystem.OpenFile(name, os.O_RDONLY, 0)
		if err != nil {
			t.Fatalf("OpenFile(O_RDONLY): got error %v, want nil", err)
		}
		defer func() { _ = f.Close() }()
		if _, err := f.Write([]byte("x")); err == nil {
			t.Errorf("Write() on read-only descriptor: got nil error, want error")
		}
	})
}

func writeAndClose(t *testing.T, f fs.File, data []byte) {
	t.Helper()
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		t.Fatalf("Write(): got error %v, want nil", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}
}

func expectContent(t *testing.T, filesystem fs.Filesystem, name string, want []byte) {
	t.Helper()
	data, err := filesystem.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v, want nil", name, err)
	}
	if !bytes.Equal(data, want) {
		t.Errorf("ReadFile(%q): got %q, want %q", name, data, want)
	}
}
