package fstest

import (
	"errors"
	iofs "io/fs"
	"testing"

	"github.com/keepcoding-tech/libkc-system/fs"
)

// TestManageFS tests Remove and RemoveAll.
func TestManageFS(t *testing.T, filesystem fs.Filesystem) {
	t.Run("RemoveFile", func(t *testing.T) {
		if err := filesystem.WriteFile("remove.txt", []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile(%q): setup failed: %v", "remove.txt", err)
		}
		if err := filesystem.Remove("remove.txt"); err != nil {
			t.Fatalf("Remove(%q): got error %v, want nil", "remove.txt", err)
		}
		if exists, _ := filesystem.Exists("remove.txt"); exists {
			t.Errorf("Exists(%q) after Remove: got true, want false", "remove.txt")
		}
	})

	t.Run("RemoveAbsent", func(t *testing.T) {
		err := filesystem.Remove("absent.txt")
		if !errors.Is(err, iofs.ErrNotExist) {
			t.Errorf("Remove(%q): got error %v, want fs.ErrNotExist", "absent.txt", err)
		}
	})

	t.Run("RemoveNonEmptyDir", func(t *testing.T) {
		if err := filesystem.MkdirAll("full", 0755); err != nil {
			t.Fatalf("MkdirAll(%q): setup failed: %v", "full", err)
		}
		if err := filesystem.WriteFile("full/a.txt", []byte("a"), 0644); err != nil {
			t.Fatalf("WriteFile(%q): setup failed: %v", "full/a.txt", err)
		}
		if err := filesystem.Remove("full"); err == nil {
			t.Errorf("Remove(%q) on non-empty directory: got nil error, want error", "full")
		}
	})

	t.Run("RemoveAll", func(t *testing.T) {
		if err := filesystem.MkdirAll("tree/sub", 0755); err != nil {
			t.Fatalf("MkdirAll(%q): setup failed: %v", "tree/sub", err)
		}
		if err := filesystem.WriteFile("tree/sub/a.txt", []byte("a"), 0644); err != nil {
			t.Fatalf("WriteFile(%q): setup failed: %v", "tree/sub/a.txt", err)
		}
		if err := filesystem.RemoveAll("tree"); err != nil {
			t.Fatalf("RemoveAll(%q): got error %v, want nil", "tree", err)
		}
		if exists, _ := filesystem.Exists("tree"); exists {
			t.Errorf("Exists(%q) after RemoveAll: got true, want false", "tree")
		}
	})
}
