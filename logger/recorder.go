package logger

import (
	"sync"
)

// Severity is the level of a recorded diagnostic.
type Severity string

// Severities recorded by Recorder.
const (
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
	SeverityFatal Severity = "fatal"
)

// Entry is one diagnostic captured by a Recorder.
type Entry struct {
	Level   Severity
	Message string
	Args    []any
}

// Recorder is a Sink that keeps every record in memory.
// It is meant for tests asserting what an operation reported.
type Recorder struct {
	mu      *sync.Mutex
	entries *[]Entry
	scope   []any
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		mu:      &sync.Mutex{},
		entries: &[]Entry{},
	}
}

// Warn implements Sink.Warn.
func (r *Recorder) Warn(msg string, args ...any) { r.record(SeverityWarn, msg, args) }

// Error implements Sink.Error.
func (r *Recorder) Error(msg string, args ...any) { r.record(SeverityError, msg, args) }

// Fatal implements Sink.Fatal.
func (r *Recorder) Fatal(msg string, args ...any) { r.record(SeverityFatal, msg, args) }

// With implements Sink.With. Scoped recorders share the parent's entries.
//
//nolint:ireturn // Sink is the contract shared by all implementations.
func (r *Recorder) With(args ...any) Sink {
	scope := make([]any, 0, len(r.scope)+len(args))
	scope = append(scope, r.scope...)
	scope = append(scope, args...)
	return &Recorder{
		mu:      r.mu,
		entries: r.entries,
		scope:   scope,
	}
}

// Entries returns a copy of the recorded diagnostics.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(*r.entries))
	copy(out, *r.entries)
	return out
}

// Last returns the most recent entry and whether one exists.
func (r *Recorder) Last() (Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(*r.entries) == 0 {
		return Entry{}, false
	}
	return (*r.entries)[len(*r.entries)-1], true
}

// Reset discards every recorded entry.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.entries = (*r.entries)[:0]
}

func (r *Recorder) record(level Severity, msg string, args []any) {
	all := make([]any, 0, len(r.scope)+len(args))
	all = append(all, r.scope...)
	all = append(all, args...)

	r.mu.Lock()
	defer r.mu.Unlock()
	*r.entries = append(*r.entries, Entry{Level: level, Message: msg, Args: all})
}
