package cairo

import (
	"runtime"
	"sync/atomic"

	"github.com/gogpu/cairo/ffi"
)

// handle owns exactly one reference to a foreign object.
//
// The reference is released by close, or by a cleanup once the handle
// becomes unreachable, whichever comes first. The cleanup argument is the
// handle's state, never the handle itself, so the handle can be collected.
type handle[H ffi.Handle] struct {
	state   *handleState[H]
	cleanup runtime.Cleanup
}

type handleState[H ffi.Handle] struct {
	refs     ffi.Refcounter[H]
	raw      H
	released atomic.Bool
}

// release drops the owned reference. It reports false if it was already
// dropped.
func (s *handleState[H]) release() bool {
	if !s.released.CompareAndSwap(false, true) {
		return false
	}
	s.refs.Destroy(s.raw)
	return true
}

func releaseUnreachable[H ffi.Handle](s *handleState[H]) {
	if s.release() {
		Logger().Debug("cairo: released unreachable handle without Close", "handle", uintptr(s.raw))
	}
}

// newHandle takes ownership of raw, which must already carry the reference
// this handle is going to own, and validates its status. On failure the
// reference is released before returning.
func newHandle[H ffi.Handle](refs ffi.Refcounter[H], raw H) (*handle[H], error) {
	if raw == 0 {
		return nil, ErrInvalidHandle
	}
	h := &handle[H]{state: &handleState[H]{refs: refs, raw: raw}}
	h.cleanup = runtime.AddCleanup(h, releaseUnreachable[H], h.state)
	if err := h.check(); err != nil {
		h.close()
		return nil, err
	}
	return h, nil
}

// adoptHandle wraps a handle obtained from a foreign query. With incref the
// query did not hand over a reference, so one is taken first.
func adoptHandle[H ffi.Handle](refs ffi.Refcounter[H], raw H, incref bool) (*handle[H], error) {
	if raw == 0 {
		return nil, ErrInvalidHandle
	}
	if incref {
		raw = refs.Reference(raw)
	}
	return newHandle(refs, raw)
}

func (h *handle[H]) raw() H {
	return h.state.raw
}

func (h *handle[H]) closed() bool {
	return h.state.released.Load()
}

// check queries the foreign status.
func (h *handle[H]) check() error {
	if h.closed() {
		return ErrClosed
	}
	err := checkStatus(h.state.refs.Status(h.state.raw))
	runtime.KeepAlive(h)
	return err
}

// use calls fn with the raw handle, keeping h reachable until fn returns.
func (h *handle[H]) use(fn func(raw H)) error {
	if h.closed() {
		return ErrClosed
	}
	fn(h.state.raw)
	runtime.KeepAlive(h)
	return nil
}

// close releases the reference. Later calls do nothing.
func (h *handle[H]) close() {
	if h.state.release() {
		h.cleanup.Stop()
	}
}

// surfaceRefs binds the reference counting of surfaces to a library.
type surfaceRefs struct {
	lib ffi.SurfaceLibrary
}

func (r surfaceRefs) Reference(h ffi.Surface) ffi.Surface { return r.lib.SurfaceReference(h) }
func (r surfaceRefs) Destroy(h ffi.Surface)               { r.lib.SurfaceDestroy(h) }
func (r surfaceRefs) Status(h ffi.Surface) ffi.Status     { return r.lib.SurfaceStatus(h) }

// patternRefs binds the reference counting of patterns to a library.
type patternRefs struct {
	lib ffi.PatternLibrary
}

func (r patternRefs) Reference(h ffi.Pattern) ffi.Pattern { return r.lib.PatternReference(h) }
func (r patternRefs) Destroy(h ffi.Pattern)               { r.lib.PatternDestroy(h) }
func (r patternRefs) Status(h ffi.Pattern) ffi.Status     { return r.lib.PatternStatus(h) }
