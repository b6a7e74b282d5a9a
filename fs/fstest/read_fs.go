package fstest

import (
	"bytes"
	"errors"
	"io"
	iofs "io/fs"
	"testing"

	"github.com/keepcoding-tech/libkc-system/fs"
)

// TestReadFS tests read-only operations: Open, Stat, ReadDir, ReadFile, Exists.
func TestReadFS(t *testing.T, filesystem fs.Filesystem) {
	testContent := []byte("test file content")

	if err := filesystem.MkdirAll("testdir", 0755); err != nil {
		t.Fatalf("MkdirAll(testdir): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("testdir/testfile.txt", testContent, 0644); err != nil {
		t.Fatalf("WriteFile(testdir/testfile.txt): setup failed: %v", err)
	}

	t.Run("OpenAndReadFull", func(t *testing.T) {
		testReadFSOpen(t, filesystem, testContent)
	})
	t.Run("StatFile", func(t *testing.T) {
		testReadFSStatFile(t, filesystem, testContent)
	})
	t.Run("StatDir", func(t *testing.T) {
		info, err := filesystem.Stat("testdir")
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", "testdir", err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(%q): IsDir() = false, want true", "testdir")
		}
	})
	t.Run("ReadDir", func(t *testing.T) {
		testReadFSReadDir(t, filesystem)
	})
	t.Run("ReadFile", func(t *testing.T) {
		data, err := filesystem.ReadFile("testdir/testfile.txt")
		if err != nil {
			t.Fatalf("ReadFile(%q): got error %v, want nil", "testdir/testfile.txt", err)
		}
		if !bytes.Equal(data, testContent) {
			t.Errorf("ReadFile(%q): got %q, want %q", "testdir/testfile.txt", data, testContent)
		}
	})
	t.Run("OpenNotExist", func(t *testing.T) {
		_, err := filesystem.Open("nonexistent")
		if !errors.Is(err, iofs.ErrNotExist) {
			t.Errorf("Open(%q): got error %v, want fs.ErrNotExist", "nonexistent", err)
		}
	})
	t.Run("Exists", func(t *testing.T) {
		testReadFSExists(t, filesystem)
	})
}

// testReadFSOpen reads the whole file through a descriptor sized by Stat,
// the way a handle reads.
func testReadFSOpen(t *testing.T, filesystem fs.Filesystem, testContent []byte) {
	f, err := filesystem.Open("testdir/testfile.txt")
	if err != nil {
		t.Fatalf("Open(%q): got error %v, want nil", "testdir/testfile.txt", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			t.Errorf("Close(): got error %v", closeErr)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		t.Fatalf("File.Stat(): got error %v, want nil", err)
	}
	if info.Size() != int64(len(testContent)) {
		t.Fatalf("File.Stat(): Size() = %d, want %d", info.Size(), len(testContent))
	}

	data := make([]byte, info.Size())
	if _, err := io.ReadFull(f, data); err != nil {
		t.Fatalf("ReadFull(): got error %v, want nil", err)
	}
	if !bytes.Equal(data, testContent) {
		t.Errorf("ReadFull(): got %q, want %q", data, testContent)
	}
}

func testReadFSStatFile(t *testing.T, filesystem fs.Filesystem, testContent []byte) {
	info, err := filesystem.Stat("testdir/testfile.txt")
	if err != nil {
		t.Fatalf("Stat(%q): got error %v, want nil", "testdir/testfile.txt", err)
	}
	if info.IsDir() {
		t.Errorf("Stat(%q): IsDir() = true, want false", "testdir/testfile.txt")
	}
	if info.Size() != int64(len(testContent)) {
		t.Errorf("Stat(%q): Size() = %d, want %d", "testdir/testfile.txt", info.Size(), len(testContent))
	}
}

func testReadFSReadDir(t *testing.T, filesystem fs.Filesystem) {
	entries, err := filesystem.ReadDir("testdir")
	if err != nil {
		t.Fatalf("ReadDir(%q): got error %v, want nil", "testdir", err)
	}
	if len(entries) != 1 {
		t.Fatalf("ReadDir(%q): got %d entries, want 1", "testdir", len(entries))
	}
	if entries[0].Name() != "testfile.txt" {
		t.Errorf("ReadDir(%q): got entry name %q, want %q", "testdir", entries[0].Name(), "testfile.txt")
	}
}

func testReadFSExists(t *testing.T, filesystem fs.Filesystem) {
	for path, want := range map[string]bool{
		"testdir/testfile.txt": true,
		"testdir":              true,
		"nonexistent":          false,
	} {
		exists, err := filesystem.Exists(path)
		if err != nil {
			t.Errorf("Exists(%q): got error %v, want nil", path, err)
			continue
		}
		if exists != want {
			t.Errorf("Exists(%q): got %v, want %v", path, exists, want)
		}
	}
}
