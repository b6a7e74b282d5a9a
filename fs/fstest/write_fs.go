package fstest

import (
	"bytes"
	"testing"

	"github.com/keepcoding-tech/libkc-system/fs"
)

// TestWriteFS tests write operations: Create, WriteFile, Mkdir, MkdirAll.
func TestWriteFS(t *testing.T, filesystem fs.Filesystem) {
	t.Run("CreateAndWrite", func(t *testing.T) {
		testWriteFSCreate(t, filesystem)
	})
	t.Run("Mkdir", func(t *testing.T) {
		testWriteFSMkdir(t, filesystem)
	})
	t.Run("MkdirExisting", func(t *testing.T) {
		if err := filesystem.Mkdir("existing", 0777); err != nil {
			t.Fatalf("Mkdir(%q): setup failed: %v", "existing", err)
		}
		if err := filesystem.Mkdir("existing", 0777); err == nil {
			t.Errorf("Mkdir(%q) twice: got nil error, want error", "existing")
		}
	})
	t.Run("MkdirMissingParent", func(t *testing.T) {
		if err := filesystem.Mkdir("missing/child", 0777); err == nil {
			t.Errorf("Mkdir(%q): got nil error, want error", "missing/child")
		}
		if exists, _ := filesystem.Exists("missing"); exists {
			t.Errorf("Mkdir(%q) created the missing parent", "missing/child")
		}
	})
	t.Run("MkdirAll", func(t *testing.T) {
		if err := filesystem.MkdirAll("parent/child/grandchild", 0755); err != nil {
			t.Fatalf("MkdirAll(%q): got error %v, want nil", "parent/child/grandchild", err)
		}
		for _, p := range []string{"parent", "parent/child", "parent/child/grandchild"} {
			info, err := filesystem.Stat(p)
			if err != nil {
				t.Errorf("Stat(%q): got error %v, want nil", p, err)
				continue
			}
			if !info.IsDir() {
				t.Errorf("Stat(%q): IsDir() = false, want true", p)
			}
		}
	})
}

func testWriteFSCreate(t *testing.T, filesystem fs.Filesystem) {
	testData := []byte("test data for Create")

	f, err := filesystem.Create("testfile.txt")
	if err != nil {
		t.Fatalf("Create(%q): got error %v, want nil", "testfile.txt", err)
	}

	n, err := f.Write(testData)
	if err != nil {
		_ = f.Close()
		t.Fatalf("Write(): got error %v, want nil", err)
	}
	if n != len(testData) {
		_ = f.Close()
		t.Fatalf("Write(): wrote %d bytes, want %d", n, len(testData))
	}

	if err := f.Close(); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}

	data, err := filesystem.ReadFile("testfile.txt")
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v, want nil", "testfile.txt", err)
	}
	if !bytes.Equal(data, testData) {
		t.Errorf("ReadFile(%q): got %q, want %q", "testfile.txt", data, testData)
	}
}

// testWriteFSMkdir creates one level at a time, the way handles build paths.
func testWriteFSMkdir(t *testing.T, filesystem fs.Filesystem) {
	for _, p := range []string{"a", "a/b", "a/b/c"} {
		if err := filesystem.Mkdir(p, 0777); err != nil {
			t.Fatalf("Mkdir(%q): got error %v, want nil", p, err)
		}
		info, err := filesystem.Stat(p)
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", p, err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(%q): IsDir() = false, want true", p)
		}
	}
}
