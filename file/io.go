package file

import (
	"fmt"
	"io"

	kcerrors "github.com/keepcoding-tech/libkc-system/errors"
)

// Read returns the whole content of the file the handle last opened.
//
// The file is reopened read-only for the transfer, so Read works whatever
// mode the handle is in and even after Close. The handle's own descriptor
// and state are left untouched. The caller owns the returned buffer.
func (h *Handle) Read() ([]byte, error) {
	const op = "read"
	if h.released() {
		return nil, nullHandle(op)
	}
	if h.name == "" {
		return nil, h.fail(severityError, kcerrors.FileInvalid, op, "", errNoName)
	}

	f, err := h.fsys.Open(h.name)
	if err != nil {
		return nil, h.fail(severityError, kcerrors.FileInvalid, op, h.name, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			h.sink.Warn("close failed", "op", op, "path", h.name, "error", err)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return nil, h.fail(severityError, kcerrors.BufferOverflow, op, h.name, err)
	}
	size := info.Size()
	if size < 0 {
		return nil, h.fail(severityError, kcerrors.BufferOverflow, op, h.name,
			fmt.Errorf("indeterminate length %d", size))
	}
	if size > h.maxReadSize {
		return nil, h.fail(severityFatal, kcerrors.OutOfMemory, op, h.name,
			fmt.Errorf("length %d exceeds limit %d", size, h.maxReadSize))
	}

	buf := make([]byte, size)
	n, err := io.ReadFull(f, buf)
	if err != nil {
		return nil, h.fail(severityError, kcerrors.BufferOverflow, op, h.name,
			fmt.Errorf("read %d of %d bytes: %w", n, size, err))
	}
	return buf, nil
}

// Write transfers all of data to the open descriptor.
//
// Write never opens the file itself; the handle must already be open in a
// mode that allows writing.
func (h *Handle) Write(data []byte) error {
	const op = "write"
	if h.released() {
		return nullHandle(op)
	}
	if data == nil {
		return h.fail(severityError, kcerrors.NullReference, op, h.name, nil)
	}
	if !h.opened {
		return h.fail(severityError, kcerrors.FileClosed, op, h.name, nil)
	}

	n, err := h.descriptor.Write(data)
	if err != nil {
		return h.fail(severityError, kcerrors.FileInvalid, op, h.name, err)
	}
	if n != len(data) {
		return h.fail(severityError, kcerrors.FileInvalid, op, h.name,
			fmt.Errorf("short write: %d of %d bytes", n, len(data)))
	}
	return nil
}
