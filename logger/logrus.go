package logger

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// LogrusSink is a Sink backed by a logrus entry.
// Fatal records are written at logrus.FatalLevel without calling os.Exit.
type LogrusSink struct {
	entry *logrus.Entry
}

// NewLogrus creates a Sink writing to logger.
// If logger is nil, logrus.StandardLogger() is used.
func NewLogrus(logger *logrus.Logger) *LogrusSink {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogrusSink{entry: logrus.NewEntry(logger)}
}

// Warn implements Sink.Warn.
func (s *LogrusSink) Warn(msg string, args ...any) {
	s.entry.WithFields(fields(args)).Log(logrus.WarnLevel, msg)
}

// Error implements Sink.Error.
func (s *LogrusSink) Error(msg string, args ...any) {
	s.entry.WithFields(fields(args)).Log(logrus.ErrorLevel, msg)
}

// Fatal implements Sink.Fatal.
func (s *LogrusSink) Fatal(msg string, args ...any) {
	s.entry.WithFields(fields(args)).Log(logrus.FatalLevel, msg)
}

// With implements Sink.With.
//
//nolint:ireturn // Sink is the contract shared by all implementations.
func (s *LogrusSink) With(args ...any) Sink {
	return &LogrusSink{entry: s.entry.WithFields(fields(args))}
}

// fields converts slog style alternating key/value args into logrus fields.
// A trailing key without a value is stored under "!BADKEY" like slog does.
func fields(args []any) logrus.Fields {
	out := make(logrus.Fields, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		if i+1 == len(args) {
			out["!BADKEY"] = args[i]
			break
		}
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		out[key] = args[i+1]
	}
	return out
}
