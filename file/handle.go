// Package file provides Handle, a stateful wrapper around one file that
// opens, reads, writes, closes and deletes it and creates directories,
// reporting every failure as a coded error.
//
// A Handle is not safe for concurrent use. Every operation blocks until
// the underlying storage call returns.
//
//	h, err := file.New()
//	if err != nil {
//		return err
//	}
//	defer h.Destroy()
//
//	if err := h.Open("notes.txt", file.CreateAlways); err != nil {
//		return err
//	}
//	if err := h.Write([]byte("hello")); err != nil {
//		return err
//	}
package file

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/uuid"

	kcerrors "github.com/keepcoding-tech/libkc-system/errors"
	kcfs "github.com/keepcoding-tech/libkc-system/fs"
	"github.com/keepcoding-tech/libkc-system/fs/billy"
	"github.com/keepcoding-tech/libkc-system/logger"
)

// FilePerm is the permission new files are created with, before umask.
const FilePerm os.FileMode = 0o666

// DirPerm is the permission CreatePath creates directories with, before umask.
const DirPerm os.FileMode = 0o777

var (
	errNoName = stderrors.New("handle does not reference a file")
	errNotDir = stderrors.New("not a directory")
)

// Handle owns at most one open descriptor of one file.
//
// While open, the handle's mode and name describe the descriptor. The
// directory path set by CreatePath is tracked separately and survives
// open and close cycles.
type Handle struct {
	id          string
	fsys        kcfs.Filesystem
	sink        logger.Sink
	maxReadSize int64

	path       string
	name       string
	mode       Mode
	descriptor kcfs.File
	opened     bool
	destroyed  bool
}

// New creates a closed handle with its own diagnostics scope.
func New(opts ...Option) (*Handle, error) {
	o := defaultOptions()
	applyOptions(o, opts)

	if o.sink == nil {
		o.sink = logger.NewSlog(nil)
	}
	if o.fsys == nil {
		o.fsys = billy.NewNative()
	}

	id, err := uuid.NewRandom()
	if err != nil {
		o.sink.Fatal(kcerrors.Message(kcerrors.OutOfMemory), "op", "create", "error", err)
		return nil, kcerrors.New(kcerrors.OutOfMemory, "create", "", err)
	}

	return &Handle{
		id:          id.String(),
		fsys:        o.fsys,
		sink:        o.sink.With("handle", id.String()),
		maxReadSize: o.maxReadSize,
		mode:        ModeInvalid,
	}, nil
}

// Destroy closes any open descriptor and releases the handle.
// Every later call on the handle, Destroy included, fails with NullReference.
func (h *Handle) Destroy() error {
	const op = "destroy"
	if h.released() {
		return nullHandle(op)
	}

	h.closeDescriptor()
	h.sink = logger.Nop
	h.fsys = nil
	h.name = ""
	h.path = ""
	h.destroyed = true
	return nil
}

// Open resolves mask to a single mode and opens name with it.
//
// If several bits are set, the last one in the order CreateNew,
// CreateAlways, OpenExisting, OpenAlways, ReadOnly, WriteOnly, DeleteAccess
// wins. A descriptor that is already open is closed first, even when the
// new open then fails.
func (h *Handle) Open(name string, mask Mode) error {
	const op = "open"
	if h.released() {
		return nullHandle(op)
	}
	if name == "" {
		return h.fail(severityError, kcerrors.NullReference, op, "", nil)
	}

	mode, flag, ok := resolve(mask)
	if !ok {
		return h.fail(severityError, kcerrors.InvalidArgument, op, name,
			fmt.Errorf("mode mask %#x has no known bit", uint32(mask)))
	}

	h.closeDescriptor()

	f, err := h.fsys.OpenFile(name, flag, FilePerm)
	if err != nil {
		code := kcerrors.FileInvalid
		if stderrors.Is(err, fs.ErrNotExist) {
			code = kcerrors.FileNotFound
		}
		return h.fail(severityError, code, op, name, err)
	}

	h.descriptor = f
	h.name = name
	h.mode = mode
	h.opened = true
	return nil
}

// Close releases the open descriptor. Closing a closed handle does nothing.
func (h *Handle) Close() error {
	if h.released() {
		return nullHandle("close")
	}
	h.closeDescriptor()
	return nil
}

// Mode returns the resolved mode of the open file.
func (h *Handle) Mode() (Mode, error) {
	const op = "get_mode"
	if h.released() {
		return ModeInvalid, nullHandle(op)
	}
	if !h.opened {
		return ModeInvalid, h.fail(severityWarn, kcerrors.FileClosed, op, "", nil)
	}
	return h.mode, nil
}

// Name returns the name the open file was opened with.
func (h *Handle) Name() (string, error) {
	const op = "get_name"
	if h.released() {
		return "", nullHandle(op)
	}
	if !h.opened {
		return "", h.fail(severityWarn, kcerrors.FileClosed, op, "", nil)
	}
	return h.name, nil
}

// Path returns the directory last created with CreatePath.
func (h *Handle) Path() (string, error) {
	if h.released() {
		return "", nullHandle("get_path")
	}
	return h.path, nil
}

// IsOpen reports whether the handle holds an open descriptor.
func (h *Handle) IsOpen() (bool, error) {
	if h.released() {
		return false, nullHandle("is_open")
	}
	return h.opened, nil
}

// Length returns the current size of the open file.
func (h *Handle) Length() (int64, error) {
	const op = "get_length"
	if h.released() {
		return 0, nullHandle(op)
	}
	if !h.opened {
		return 0, h.fail(severityWarn, kcerrors.FileClosed, op, "", nil)
	}
	info, err := h.descriptor.Stat()
	if err != nil {
		return 0, h.fail(severityError, kcerrors.FileInvalid, op, h.name, err)
	}
	return info.Size(), nil
}

// ID returns the identifier the handle's diagnostics are scoped with.
func (h *Handle) ID() string {
	if h == nil {
		return ""
	}
	return h.id
}

func (h *Handle) released() bool {
	return h == nil || h.destroyed
}

// closeDescriptor drops the open descriptor, if any. A failing close is
// reported but the handle ends up closed regardless.
func (h *Handle) closeDescriptor() {
	if !h.opened {
		return
	}
	if err := h.descriptor.Close(); err != nil {
		h.sink.Warn("close failed", "op", "close", "path", h.name, "error", err)
	}
	h.descriptor = nil
	h.mode = ModeInvalid
	h.opened = false
}
