//go:build unix

package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	kcfs "github.com/keepcoding-tech/libkc-system/fs"
	"github.com/keepcoding-tech/libkc-system/fs/billy"
)

func TestCreatePath_Permissions(t *testing.T) {
	old := unix.Umask(0)
	t.Cleanup(func() { unix.Umask(old) })

	tests := []struct {
		name string
		fsys func(root string) kcfs.Filesystem
		path func(root string) string
	}{
		{
			name: "native",
			fsys: func(string) kcfs.Filesystem { return billy.NewNative() },
			path: func(root string) string { return filepath.Join(root, "a") },
		},
		{
			name: "rooted",
			fsys: func(root string) kcfs.Filesystem { return billy.NewOS(root) },
			path: func(string) string { return "a" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			h, _ := newHandle(t, tt.fsys(root))

			require.NoError(t, h.CreatePath(tt.path(root)))

			info, err := os.Stat(filepath.Join(root, "a"))
			require.NoError(t, err)
			assert.True(t, info.IsDir())
			assert.Equal(t, DirPerm, info.Mode().Perm())
		})
	}
}
