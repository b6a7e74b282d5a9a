package file

import (
	kcerrors "github.com/keepcoding-tech/libkc-system/errors"
	"github.com/keepcoding-tech/libkc-system/logger"
)

type severity int

const (
	severityWarn severity = iota
	severityError
	severityFatal
)

// fail reports a failure of op to the handle's sink and returns it as a coded error.
func (h *Handle) fail(sev severity, code kcerrors.Code, op, path string, cause error) error {
	err := kcerrors.New(code, op, path, cause)
	report(h.sink, sev, err)
	return err
}

// nullHandle reports an operation on an absent or destroyed handle. Such a
// handle has no sink of its own, so the default one is used.
func nullHandle(op string) error {
	err := kcerrors.New(kcerrors.NullReference, op, "", nil)
	report(logger.NewSlog(nil), severityError, err)
	return err
}

func report(sink logger.Sink, sev severity, err *kcerrors.Error) {
	args := []any{"op", err.Op, "code", int(err.Code)}
	if err.Path != "" {
		args = append(args, "path", err.Path)
	}
	if err.Err != nil {
		args = append(args, "error", err.Err)
	}

	msg := kcerrors.Message(err.Code)
	switch sev {
	case severityWarn:
		sink.Warn(msg, args...)
	case severityFatal:
		sink.Fatal(msg, args...)
	default:
		sink.Error(msg, args...)
	}
}
