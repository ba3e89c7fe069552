// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"errors"
	"os"

	"github.com/gogpu/cairo/ffi"
)

// errCallback reports that a caller callback returned a failure status.
var errCallback = errors.New("software: stream callback failed")

// sink is the destination of a document surface: a file, a write callback,
// or neither (output is discarded).
type sink struct {
	filename string
	write    ffi.WriteFunc
	closure  ffi.Closure
}

func (l *Library) emit(dst sink, data []byte) ffi.Status {
	switch {
	case dst.filename != "":
		//nolint:gosec // G306: output files follow the caller's umask
		if err := os.WriteFile(dst.filename, data, 0o644); err != nil {
			l.opts.logger.Warn("software: write output file", "file", dst.filename, "err", err)
			return ffi.StatusWriteError
		}
	case dst.write != nil:
		w := &callbackWriter{fn: dst.write, closure: dst.closure, chunk: l.opts.chunkSize}
		if _, err := w.Write(data); err != nil {
			return w.status
		}
	}
	return ffi.StatusSuccess
}

// callbackWriter adapts a WriteFunc to io.Writer, handing the callback at
// most chunk bytes per invocation.
type callbackWriter struct {
	fn      ffi.WriteFunc
	closure ffi.Closure
	chunk   int
	status  ffi.Status
}

func (w *callbackWriter) Write(p []byte) (int, error) {
	n := 0
	for len(p) > 0 {
		c := min(len(p), w.chunk)
		if status := w.fn(w.closure, p[:c]); status != ffi.StatusSuccess {
			w.status = status
			return n, errCallback
		}
		n += c
		p = p[c:]
	}
	return n, nil
}

// callbackReader adapts a ReadFunc to io.Reader. Each call asks the
// callback to fill the whole (chunk-limited) buffer; the callback either
// does so or fails.
type callbackReader struct {
	fn      ffi.ReadFunc
	closure ffi.Closure
	chunk   int
	status  ffi.Status
}

func (r *callbackReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	c := min(len(p), r.chunk)
	if status := r.fn(r.closure, p[:c]); status != ffi.StatusSuccess {
		r.status = status
		return 0, errCallback
	}
	return c, nil
}
