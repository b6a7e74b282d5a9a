package file

import (
	"log/slog"

	"github.com/keepcoding-tech/libkc-system/fs"
	"github.com/keepcoding-tech/libkc-system/logger"
)

// DefaultMaxReadSize is the largest file Read loads when no limit is configured.
const DefaultMaxReadSize int64 = 1 << 30

// options holds configuration for a Handle.
type options struct {
	fsys        fs.Filesystem
	sink        logger.Sink
	maxReadSize int64
}

// Option is a functional option for configuring a Handle.
type Option func(*options)

// WithFilesystem sets the storage the handle operates on.
// If fsys is nil, the native filesystem is used.
func WithFilesystem(fsys fs.Filesystem) Option {
	return func(opts *options) {
		opts.fsys = fsys
	}
}

// WithLogger reports diagnostics to logger.
// If logger is nil, slog.Default() is used.
func WithLogger(l *slog.Logger) Option {
	return func(opts *options) {
		opts.sink = logger.NewSlog(l)
	}
}

// WithSink reports diagnostics to sink.
// If sink is nil, diagnostics are discarded.
func WithSink(sink logger.Sink) Option {
	return func(opts *options) {
		if sink == nil {
			sink = logger.Nop
		}
		opts.sink = sink
	}
}

// WithMaxReadSize limits the size of files Read loads into memory.
// Values below zero are ignored.
func WithMaxReadSize(n int64) Option {
	return func(opts *options) {
		if n >= 0 {
			opts.maxReadSize = n
		}
	}
}

// defaultOptions returns the default configuration options.
func defaultOptions() *options {
	return &options{
		fsys:        nil, // Native filesystem, resolved in New
		sink:        nil, // slog.Default(), resolved in New
		maxReadSize: DefaultMaxReadSize,
	}
}

// applyOptions applies the given options to the handle options.
func applyOptions(opts *options, list []Option) {
	for _, option := range list {
		option(opts)
	}
}
