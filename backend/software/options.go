// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import "log/slog"

// DefaultVersion is the cairo version the library reports by default.
const DefaultVersion = "1.18.0"

// DefaultChunkSize is the largest buffer handed to a single read or write
// callback invocation.
const DefaultChunkSize = 4096

// Option configures a Library during creation.
//
// Example:
//
//	lib := software.New(
//	    software.WithVersion("1.16.0"),
//	    software.WithSyncDestructors(),
//	)
type Option func(*options)

type options struct {
	version         string
	chunkSize       int
	syncDestructors bool
	logger          *slog.Logger
}

func defaultOptions() options {
	return options{
		version:   DefaultVersion,
		chunkSize: DefaultChunkSize,
		logger:    slog.New(slog.DiscardHandler),
	}
}

// WithVersion sets the version string the library reports.
// Callers use it to gate features introduced in later releases.
func WithVersion(v string) Option {
	return func(o *options) {
		o.version = v
	}
}

// WithChunkSize sets the maximum number of bytes passed to a read or write
// callback in one invocation. Values below 1 are ignored.
func WithChunkSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.chunkSize = n
		}
	}
}

// WithSyncDestructors runs destroy callbacks on the goroutine that dropped
// the last reference instead of on a library goroutine.
func WithSyncDestructors() Option {
	return func(o *options) {
		o.syncDestructors = true
	}
}

// WithLogger sets the logger for library diagnostics. Nil restores the
// silent default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.logger = l
	}
}
