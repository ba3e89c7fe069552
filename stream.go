package cairo

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/gogpu/cairo/ffi"
)

// streamBridge adapts an io.Reader or io.Writer to the foreign read and
// write callbacks. The first local failure is recorded and later attached
// to the status error of the object using the bridge.
type streamBridge struct {
	r io.Reader
	w io.Writer

	mu       sync.Mutex
	err      error
	scratch  []byte
	detached bool
}

func newStreamBridge(r io.Reader, w io.Writer) *streamBridge {
	return &streamBridge{r: r, w: w}
}

// readFunc returns the read adapter, or nil without a reader.
func (b *streamBridge) readFunc() ffi.ReadFunc {
	if b == nil || b.r == nil {
		return nil
	}
	return b.read
}

// writeFunc returns the write adapter, or nil without a writer.
func (b *streamBridge) writeFunc() ffi.WriteFunc {
	if b == nil || b.w == nil {
		return nil
	}
	return b.write
}

// read fills data completely or fails. Fewer bytes than requested, end of
// input included, is a read error.
func (b *streamBridge) read(_ ffi.Closure, data []byte) (status ffi.Status) {
	defer func() {
		if p := recover(); p != nil {
			Logger().Warn("cairo: stream reader panicked", "panic", p)
			b.fail("read", fmt.Errorf("panic: %v", p))
			status = ffi.StatusReadError
		}
	}()
	b.mu.Lock()
	if cap(b.scratch) < len(data) {
		b.scratch = make([]byte, len(data))
	}
	buf := b.scratch[:len(data)]
	b.mu.Unlock()

	n, err := io.ReadFull(b.r, buf)
	if n < len(data) {
		if err == nil || errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		b.fail("read", err)
		return ffi.StatusReadError
	}
	copy(data, buf)
	return ffi.StatusSuccess
}

// write forwards data to the writer. Errors, short writes and panics
// become a write error.
func (b *streamBridge) write(_ ffi.Closure, data []byte) (status ffi.Status) {
	defer func() {
		if p := recover(); p != nil {
			Logger().Warn("cairo: stream writer panicked", "panic", p)
			b.fail("write", fmt.Errorf("panic: %v", p))
			status = ffi.StatusWriteError
		}
	}()
	b.mu.Lock()
	detached := b.detached
	b.mu.Unlock()
	if detached {
		return ffi.StatusSuccess
	}
	chunk := make([]byte, len(data))
	copy(chunk, data)
	n, err := b.w.Write(chunk)
	if err == nil && n < len(chunk) {
		err = io.ErrShortWrite
	}
	if err != nil {
		b.fail("write", err)
		return ffi.StatusWriteError
	}
	return ffi.StatusSuccess
}

// detach makes later writes succeed without reaching the writer.
func (b *streamBridge) detach() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.detached = true
}

func (b *streamBridge) fail(op string, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err == nil {
		b.err = &StreamError{Op: op, Err: err}
	}
}

// Err returns the first recorded failure.
func (b *streamBridge) Err() error {
	if b == nil {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

// withStream attaches the bridge's recorded failure to a status error that
// has no cause yet.
func withStream(err error, b *streamBridge) error {
	var se *StatusError
	if err == nil || !errors.As(err, &se) || se.Err != nil {
		return err
	}
	if cause := b.Err(); cause != nil {
		se.Err = cause
	}
	return err
}
