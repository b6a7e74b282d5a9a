package file

import (
	"fmt"
	"os"
	"strings"
)

// Mode is both the bitmask callers pass to Open and the resolved mode a
// handle reports once open. Bit values are stable.
type Mode uint32

const (
	// ModeInvalid is the mode of a handle that is not open.
	ModeInvalid Mode = 0x00

	// CreateNew creates the file and fails if it already exists.
	CreateNew Mode = 0x01

	// CreateAlways creates the file, truncating it if it exists.
	CreateAlways Mode = 0x02

	// OpenExisting opens the file for reading and fails if it is absent.
	OpenExisting Mode = 0x04

	// OpenAlways opens the file for reading and appending, creating it if absent.
	OpenAlways Mode = 0x08

	// ReadOnly opens an existing file for reading only.
	ReadOnly Mode = 0x10

	// WriteOnly opens the file for writing only, creating or truncating it.
	WriteOnly Mode = 0x20

	// DeleteAccess opens an existing file for reading and writing without
	// truncating it, ahead of a Delete.
	DeleteAccess Mode = 0x40
)

// resolution lists every mode in the order masks are checked against.
// When a mask carries several bits the last matching entry wins.
var resolution = []struct {
	mode Mode
	flag int
	name string
}{
	{mode: CreateNew, flag: os.O_WRONLY | os.O_CREATE | os.O_EXCL, name: "CreateNew"},
	{mode: CreateAlways, flag: os.O_WRONLY | os.O_CREATE | os.O_TRUNC, name: "CreateAlways"},
	{mode: OpenExisting, flag: os.O_RDONLY, name: "OpenExisting"},
	{mode: OpenAlways, flag: os.O_RDWR | os.O_CREATE | os.O_APPEND, name: "OpenAlways"},
	{mode: ReadOnly, flag: os.O_RDONLY, name: "ReadOnly"},
	{mode: WriteOnly, flag: os.O_WRONLY | os.O_CREATE | os.O_TRUNC, name: "WriteOnly"},
	{mode: DeleteAccess, flag: os.O_RDWR, name: "DeleteAccess"},
}

// resolve picks the mode and open flags for mask.
// ok is false when no known bit is set.
func resolve(mask Mode) (mode Mode, flag int, ok bool) {
	mode = ModeInvalid
	for _, r := range resolution {
		if mask&r.mode != 0 {
			mode, flag = r.mode, r.flag
		}
	}
	return mode, flag, mode != ModeInvalid
}

// Flag returns the os.OpenFile flags mask resolves to.
// It returns false when mask carries no known bit.
func (m Mode) Flag() (int, bool) {
	_, flag, ok := resolve(m)
	return flag, ok
}

// Resolve returns the single mode mask resolves to, or ModeInvalid.
func (m Mode) Resolve() Mode {
	mode, _, _ := resolve(m)
	return mode
}

// String renders the set bits by name, e.g. "CreateAlways|ReadOnly".
func (m Mode) String() string {
	if m == ModeInvalid {
		return "Invalid"
	}
	var names []string
	rest := m
	for _, r := range resolution {
		if m&r.mode != 0 {
			names = append(names, r.name)
			rest &^= r.mode
		}
	}
	if rest != 0 {
		names = append(names, fmt.Sprintf("%#x", uint32(rest)))
	}
	return strings.Join(names, "|")
}
