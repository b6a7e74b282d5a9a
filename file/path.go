package file

import (
	"path/filepath"

	kcerrors "github.com/keepcoding-tech/libkc-system/errors"
)

// Delete closes the handle and removes the file it last opened.
// A failed removal is reported as a warning; the name is kept so the
// caller can retry.
func (h *Handle) Delete() error {
	const op = "delete"
	if h.released() {
		return nullHandle(op)
	}

	h.closeDescriptor()

	if h.name == "" {
		return h.fail(severityWarn, kcerrors.FileInvalid, op, "", errNoName)
	}
	if err := h.fsys.Remove(h.name); err != nil {
		return h.fail(severityWarn, kcerrors.FileInvalid, op, h.name, err)
	}

	h.name = ""
	return nil
}

// CreatePath creates the single directory path with DirPerm and stores it
// as the handle's path. Parents are not created, and an existing path is
// an error. The previously stored path is cleared before the attempt.
func (h *Handle) CreatePath(path string) error {
	const op = "create_path"
	if h.released() {
		return nullHandle(op)
	}
	if path == "" {
		return h.fail(severityError, kcerrors.NullReference, op, "", nil)
	}

	h.path = ""
	if err := h.fsys.Mkdir(path, DirPerm); err != nil {
		return h.fail(severityError, kcerrors.FileInvalid, op, path, err)
	}

	h.path = path
	return nil
}

// DeletePath removes the directory path. A directory with entries is only
// removed, together with everything below it, when files is true; otherwise
// DeletePath fails with DirNotEmpty. If path is the handle's stored path,
// the stored path is cleared.
func (h *Handle) DeletePath(path string, files bool) error {
	const op = "delete_path"
	if h.released() {
		return nullHandle(op)
	}
	if path == "" {
		return h.fail(severityError, kcerrors.NullReference, op, "", nil)
	}

	info, err := h.fsys.Stat(path)
	if err != nil {
		return h.fail(severityWarn, kcerrors.FileInvalid, op, path, err)
	}
	if !info.IsDir() {
		return h.fail(severityWarn, kcerrors.FileInvalid, op, path, errNotDir)
	}

	entries, err := h.fsys.ReadDir(path)
	if err != nil {
		return h.fail(severityError, kcerrors.FileInvalid, op, path, err)
	}

	switch {
	case len(entries) == 0:
		err = h.fsys.Remove(path)
	case files:
		err = h.fsys.RemoveAll(path)
	default:
		return h.fail(severityWarn, kcerrors.DirNotEmpty, op, path, nil)
	}
	if err != nil {
		return h.fail(severityError, kcerrors.FileInvalid, op, path, err)
	}

	if h.path != "" && filepath.Clean(h.path) == filepath.Clean(path) {
		h.path = ""
	}
	return nil
}
