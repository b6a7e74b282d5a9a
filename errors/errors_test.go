package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeValues(t *testing.T) {
	tests := []struct {
		name     string
		code     Code
		expected int
	}{
		{name: "Success", code: Success, expected: 0x00},
		{name: "Invalid", code: Invalid, expected: -0x01},
		{name: "FileClosed", code: FileClosed, expected: 0x80},
		{name: "DirNotEmpty", code: DirNotEmpty, expected: 0x100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, int(tt.code))
		})
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		code     Code
		expected string
	}{
		{code: Success, expected: "success"},
		{code: NullReference, expected: "null reference"},
		{code: OutOfMemory, expected: "out of memory"},
		{code: InvalidArgument, expected: "invalid argument"},
		{code: FileNotFound, expected: "file not found"},
		{code: FileInvalid, expected: "invalid file"},
		{code: BufferOverflow, expected: "buffer overflow"},
		{code: FileClosed, expected: "file closed"},
		{code: DirNotEmpty, expected: "directory not empty"},
		{code: Code(0x4000), expected: "invalid operation"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Message(tt.code))
			assert.Equal(t, tt.expected, tt.code.Error())
		})
	}
}

func TestError(t *testing.T) {
	t.Run("formatting with path and cause", func(t *testing.T) {
		err := New(FileNotFound, "open", "data.txt", fs.ErrNotExist)
		assert.Equal(t, `open "data.txt": file not found: file does not exist`, err.Error())
	})

	t.Run("formatting without path", func(t *testing.T) {
		err := New(NullReference, "write", "", nil)
		assert.Equal(t, "write: null reference", err.Error())
	})

	t.Run("unwraps to platform cause", func(t *testing.T) {
		err := New(FileInvalid, "delete", "x", fs.ErrNotExist)
		assert.True(t, stderrors.Is(err, fs.ErrNotExist))
	})

	t.Run("matches its code", func(t *testing.T) {
		wrapped := fmt.Errorf("context: %w", New(FileClosed, "name", "", nil))
		assert.True(t, stderrors.Is(wrapped, FileClosed))
		assert.False(t, stderrors.Is(wrapped, FileInvalid))

		var e *Error
		require.True(t, stderrors.As(wrapped, &e))
		assert.Equal(t, "name", e.Op)
	})
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{name: "nil is success", err: nil, expected: Success},
		{name: "coded error", err: New(DirNotEmpty, "delete_path", "d", nil), expected: DirNotEmpty},
		{name: "wrapped coded error", err: fmt.Errorf("x: %w", New(BufferOverflow, "read", "f", nil)), expected: BufferOverflow},
		{name: "bare code", err: FileClosed, expected: FileClosed},
		{name: "foreign error", err: stderrors.New("boom"), expected: Invalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CodeOf(tt.err))
			assert.True(t, HasCode(tt.err, tt.expected))
		})
	}
}
