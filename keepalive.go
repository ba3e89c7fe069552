package cairo

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/gogpu/cairo/ffi"
)

// keepAlive holds local objects a foreign object points into. The foreign
// library releases the bundle by calling the destroy function returned by
// closure with the bundle's token.
type keepAlive struct {
	token   ffi.Closure
	objects []any
	pinner  runtime.Pinner
}

var nextKeepAliveToken atomic.Uintptr

func newKeepAlive(objects ...any) *keepAlive {
	return &keepAlive{
		token:   ffi.Closure(nextKeepAliveToken.Add(1)),
		objects: objects,
	}
}

// closure returns the user-data pair to hand to the foreign library.
func (k *keepAlive) closure() (ffi.Closure, ffi.DestroyFunc) {
	return k.token, keepAlives.release
}

// keepAliveRegistry is the set of bundles the foreign library still
// references. Releases arrive on goroutines owned by the library.
type keepAliveRegistry struct {
	mu       sync.Mutex
	live     map[ffi.Closure]*keepAlive
	released uint64
}

var keepAlives = &keepAliveRegistry{live: make(map[ffi.Closure]*keepAlive)}

// save pins k. It must only be called after the foreign call that stored
// k's token succeeded. Saving the same bundle twice is a no-op.
func (r *keepAliveRegistry) save(k *keepAlive) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.live[k.token]; ok {
		return
	}
	for _, obj := range k.objects {
		if b, ok := obj.([]byte); ok && len(b) > 0 {
			k.pinner.Pin(&b[0])
		}
	}
	r.live[k.token] = k
	Logger().Debug("cairo: keep-alive saved", "token", uintptr(k.token), "objects", len(k.objects))
}

// release is the destroy function installed with every bundle.
func (r *keepAliveRegistry) release(token ffi.Closure) {
	r.mu.Lock()
	k, ok := r.live[token]
	if ok {
		delete(r.live, token)
		r.released++
	}
	r.mu.Unlock()
	if !ok {
		Logger().Debug("cairo: release of unknown keep-alive", "token", uintptr(token))
		return
	}
	k.pinner.Unpin()
	Logger().Debug("cairo: keep-alive released", "token", uintptr(token))
}

func (r *keepAliveRegistry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}

func (r *keepAliveRegistry) contains(token ffi.Closure) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.live[token]
	return ok
}

// releases returns how many bundles were released so far.
func (r *keepAliveRegistry) releases() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.released
}
