package file

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kcerrors "github.com/keepcoding-tech/libkc-system/errors"
	"github.com/keepcoding-tech/libkc-system/fs/billy"
	"github.com/keepcoding-tech/libkc-system/logger"
)

func TestDelete(t *testing.T) {
	t.Run("never opened", func(t *testing.T) {
		h, rec := newHandle(t, billy.NewMemory())

		requireCode(t, kcerrors.FileInvalid, h.Delete())
		requireReported(t, rec, logger.SeverityWarn, kcerrors.FileInvalid)
	})

	for name, newFS := range backends() {
		t.Run("open file/"+name, func(t *testing.T) {
			fsys := newFS(t)
			h, rec := newHandle(t, fsys)

			require.NoError(t, h.Open("del.txt", CreateAlways))
			require.NoError(t, h.Write([]byte("bye")))
			require.NoError(t, h.Delete())

			exists, err := fsys.Exists("del.txt")
			require.NoError(t, err)
			assert.False(t, exists)

			open, err := h.IsOpen()
			require.NoError(t, err)
			assert.False(t, open)
			assert.Empty(t, h.name)

			requireCode(t, kcerrors.FileInvalid, h.Delete())
			requireReported(t, rec, logger.SeverityWarn, kcerrors.FileInvalid)
		})
	}

	t.Run("after close", func(t *testing.T) {
		fsys := billy.NewMemory()
		h, _ := newHandle(t, fsys)

		require.NoError(t, h.Open("closed.txt", CreateAlways))
		require.NoError(t, h.Close())
		require.NoError(t, h.Delete())

		exists, err := fsys.Exists("closed.txt")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("removal failure keeps name", func(t *testing.T) {
		fsys := billy.NewMemory()
		h, rec := newHandle(t, fsys)

		require.NoError(t, h.Open("kept.txt", CreateAlways))
		require.NoError(t, fsys.Remove("kept.txt"))

		requireCode(t, kcerrors.FileInvalid, h.Delete())
		requireReported(t, rec, logger.SeverityWarn, kcerrors.FileInvalid)
		assert.Equal(t, "kept.txt", h.name)
	})
}

func TestCreatePath(t *testing.T) {
	for name, newFS := range backends() {
		t.Run(name, func(t *testing.T) {
			fsys := newFS(t)
			h, _ := newHandle(t, fsys)

			require.NoError(t, h.CreatePath("a"))
			require.NoError(t, h.CreatePath("a/b"))
			require.NoError(t, h.CreatePath("a/b/c"))

			path, err := h.Path()
			require.NoError(t, err)
			assert.Equal(t, "a/b/c", path)

			info, err := fsys.Stat(filepath.Join("a", "b", "c"))
			require.NoError(t, err)
			assert.True(t, info.IsDir())
		})
	}
}

func TestCreatePath_Failures(t *testing.T) {
	t.Run("missing parent", func(t *testing.T) {
		fsys := billy.NewMemory()
		h, rec := newHandle(t, fsys)
		require.NoError(t, h.CreatePath("first"))

		requireCode(t, kcerrors.FileInvalid, h.CreatePath("x/y"))
		requireReported(t, rec, logger.SeverityError, kcerrors.FileInvalid)

		path, err := h.Path()
		require.NoError(t, err)
		assert.Empty(t, path, "the previous path is released before the attempt")

		exists, err := fsys.Exists("x")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("already exists", func(t *testing.T) {
		h, _ := newHandle(t, billy.NewMemory())
		require.NoError(t, h.CreatePath("dup"))

		requireCode(t, kcerrors.FileInvalid, h.CreatePath("dup"))
	})

	t.Run("empty path", func(t *testing.T) {
		h, _ := newHandle(t, billy.NewMemory())

		requireCode(t, kcerrors.NullReference, h.CreatePath(""))
	})
}

func TestDeletePath(t *testing.T) {
	for name, newFS := range backends() {
		t.Run(name, func(t *testing.T) {
			t.Run("empty directory", func(t *testing.T) {
				fsys := newFS(t)
				h, _ := newHandle(t, fsys)
				require.NoError(t, h.CreatePath("empty"))

				require.NoError(t, h.DeletePath("empty", false))

				exists, err := fsys.Exists("empty")
				require.NoError(t, err)
				assert.False(t, exists)

				path, err := h.Path()
				require.NoError(t, err)
				assert.Empty(t, path)
			})

			t.Run("non-empty without files", func(t *testing.T) {
				fsys := newFS(t)
				h, rec := newHandle(t, fsys)
				require.NoError(t, h.CreatePath("full"))
				require.NoError(t, fsys.WriteFile("full/a.txt", []byte("a"), 0o644))

				requireCode(t, kcerrors.DirNotEmpty, h.DeletePath("full", false))
				requireReported(t, rec, logger.SeverityWarn, kcerrors.DirNotEmpty)

				exists, err := fsys.Exists("full/a.txt")
				require.NoError(t, err)
				assert.True(t, exists)

				path, err := h.Path()
				require.NoError(t, err)
				assert.Equal(t, "full", path)
			})

			t.Run("non-empty with files", func(t *testing.T) {
				fsys := newFS(t)
				h, _ := newHandle(t, fsys)
				require.NoError(t, h.CreatePath("tree"))
				require.NoError(t, h.CreatePath("tree/sub"))
				require.NoError(t, fsys.WriteFile("tree/sub/a.txt", []byte("a"), 0o644))
				require.NoError(t, fsys.WriteFile("tree/b.txt", []byte("b"), 0o644))

				require.NoError(t, h.DeletePath("tree", true))

				exists, err := fsys.Exists("tree")
				require.NoError(t, err)
				assert.False(t, exists)
			})
		})
	}

	t.Run("missing directory", func(t *testing.T) {
		h, rec := newHandle(t, billy.NewMemory())

		requireCode(t, kcerrors.FileInvalid, h.DeletePath("nowhere", true))
		requireReported(t, rec, logger.SeverityWarn, kcerrors.FileInvalid)
	})

	t.Run("regular file", func(t *testing.T) {
		fsys := billy.NewMemory()
		require.NoError(t, fsys.WriteFile("plain.txt", []byte("x"), 0o644))
		h, _ := newHandle(t, fsys)

		requireCode(t, kcerrors.FileInvalid, h.DeletePath("plain.txt", true))

		exists, err := fsys.Exists("plain.txt")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("other path keeps stored path", func(t *testing.T) {
		h, _ := newHandle(t, billy.NewMemory())
		require.NoError(t, h.CreatePath("one"))
		require.NoError(t, h.CreatePath("two"))

		require.NoError(t, h.DeletePath("one", false))

		path, err := h.Path()
		require.NoError(t, err)
		assert.Equal(t, "two", path)
	})

	t.Run("empty path", func(t *testing.T) {
		h, _ := newHandle(t, billy.NewMemory())

		requireCode(t, kcerrors.NullReference, h.DeletePath("", false))
	})
}
