// Package errors provides the status codes returned by every file handle operation.
// Codes are integers so they stay stable for callers that persist or compare them
// numerically, and each code maps to a fixed diagnostic message.
package errors

// Code represents a specific status condition of a file handle operation.
type Code int

const (
	// Success indicates the operation completed.
	Success Code = 0x00

	// Invalid is the generic failure status.
	Invalid Code = -0x01

	// Programmer errors.

	// NullReference indicates an absent handle or a missing required argument.
	NullReference Code = 0x01

	// Resource errors.

	// OutOfMemory indicates a buffer could not be allocated for the operation.
	OutOfMemory Code = 0x02

	// Validation errors.

	// InvalidArgument indicates a malformed argument, such as a mode mask with no known bit.
	InvalidArgument Code = 0x04

	// Environment errors.

	// FileNotFound indicates the named file does not exist.
	FileNotFound Code = 0x08

	// FileInvalid indicates the platform rejected the file operation.
	FileInvalid Code = 0x10

	// Data integrity errors.

	// BufferOverflow indicates the transferred length disagrees with the expected length.
	BufferOverflow Code = 0x20

	// State errors.

	// FileClosed indicates the operation requires an open file.
	FileClosed Code = 0x80

	// DirNotEmpty indicates a directory still has entries.
	DirNotEmpty Code = 0x100
)

var messages = map[Code]string{
	Success:         "success",
	Invalid:         "invalid operation",
	NullReference:   "null reference",
	OutOfMemory:     "out of memory",
	InvalidArgument: "invalid argument",
	FileNotFound:    "file not found",
	FileInvalid:     "invalid file",
	BufferOverflow:  "buffer overflow",
	FileClosed:      "file closed",
	DirNotEmpty:     "directory not empty",
}

// Message returns the diagnostic message for code.
// Unknown codes map to the message of Invalid.
func Message(code Code) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return messages[Invalid]
}

// Error implements the error interface so a bare Code can be used as a
// target for errors.Is.
func (c Code) Error() string {
	return Message(c)
}

// String returns the diagnostic message for the code.
func (c Code) String() string {
	return Message(c)
}
