// Package logger provides the diagnostics sink that file handles report
// failures to. A sink records warnings, errors and fatal conditions; it never
// alters the control flow of the caller, so Fatal logs and returns.
package logger

import (
	"context"
	"log/slog"
)

// LevelFatal is the slog level used for fatal diagnostics.
// It sorts above slog.LevelError.
const LevelFatal = slog.Level(12)

// Sink receives structured diagnostics.
// Implementations should be safe to call with alternating key/value args the
// way slog.Logger is.
type Sink interface {
	// Warn records an expected, recoverable failure.
	Warn(msg string, args ...any)

	// Error records an unexpected failure.
	Error(msg string, args ...any)

	// Fatal records an unrecoverable failure. It must return.
	Fatal(msg string, args ...any)

	// With returns a sink that adds args to every record.
	With(args ...any) Sink
}

// SlogSink is a Sink backed by a *slog.Logger.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlog creates a Sink writing to logger.
// If logger is nil, slog.Default() is used.
func NewSlog(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{logger: logger}
}

// Warn implements Sink.Warn.
func (s *SlogSink) Warn(msg string, args ...any) {
	s.logger.Warn(msg, args...)
}

// Error implements Sink.Error.
func (s *SlogSink) Error(msg string, args ...any) {
	s.logger.Error(msg, args...)
}

// Fatal implements Sink.Fatal.
func (s *SlogSink) Fatal(msg string, args ...any) {
	s.logger.Log(context.Background(), LevelFatal, msg, args...)
}

// With implements Sink.With.
//
//nolint:ireturn // Sink is the contract shared by all implementations.
func (s *SlogSink) With(args ...any) Sink {
	return &SlogSink{logger: s.logger.With(args...)}
}

// ReplaceLevel renders LevelFatal as "FATAL". Use it as the ReplaceAttr of
// slog.HandlerOptions.
func ReplaceLevel(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if level, ok := a.Value.Any().(slog.Level); ok && level >= LevelFatal {
		a.Value = slog.StringValue("FATAL")
	}
	return a
}

type nop struct{}

func (nop) Warn(string, ...any)  {}
func (nop) Error(string, ...any) {}
func (nop) Fatal(string, ...any) {}

//nolint:ireturn // Sink is the contract shared by all implementations.
func (n nop) With(...any) Sink { return n }

// Nop is a Sink that discards every record.
var Nop Sink = nop{}
