package errors

import (
	stderrors "errors"
	"fmt"
)

// Error is a coded failure of a file handle operation.
// It preserves the underlying platform error for errors.Is and errors.As.
type Error struct {
	Code Code   // Status code of the failure
	Op   string // Operation that failed, e.g. "open"
	Path string // File or directory the operation targeted, if any
	Err  error  // Underlying error, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, Message(e.Code))
	if e.Path != "" {
		msg = fmt.Sprintf("%s %q: %s", e.Op, e.Path, Message(e.Code))
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the Code carried by e.
func (e *Error) Is(target error) bool {
	code, ok := target.(Code)
	return ok && code == e.Code
}

// New creates a coded error for op on path wrapping err.
func New(code Code, op, path string, err error) *Error {
	return &Error{
		Code: code,
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// CodeOf returns the status code carried by err.
// A nil error is Success and an error without a code is Invalid.
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	var code Code
	if stderrors.As(err, &code) {
		return code
	}
	return Invalid
}

// HasCode checks if err carries code anywhere in its chain.
func HasCode(err error, code Code) bool {
	return CodeOf(err) == code
}
