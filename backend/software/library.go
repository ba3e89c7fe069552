// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gogpu/cairo/ffi"
)

// Library is an in-process ffi.Library.
//
// Library is safe for concurrent use. Each object carries its own lock;
// callbacks into caller code are never invoked with a lock held.
type Library struct {
	opts options

	mu      sync.RWMutex
	objects map[uintptr]*object
	nextID  uintptr

	references      atomic.Uint64
	destroys        atomic.Uint64
	invalidDestroys atomic.Uint64

	// pending tracks destructor goroutines still running.
	pending sync.WaitGroup
}

var _ ffi.Library = (*Library)(nil)

// Stats is a snapshot of reference-counting activity.
type Stats struct {
	// Live is the number of objects whose reference count is above zero.
	Live int

	// References counts SurfaceReference and PatternReference calls.
	References uint64

	// Destroys counts SurfaceDestroy and PatternDestroy calls on live objects.
	Destroys uint64

	// InvalidDestroys counts destroy calls on handles that were not live.
	// Any non-zero value is a double free in the caller.
	InvalidDestroys uint64
}

// New creates a library with the given options.
func New(opts ...Option) *Library {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Library{
		opts:    o,
		objects: make(map[uintptr]*object),
	}
}

// Stats returns a snapshot of the library's reference-counting counters.
func (l *Library) Stats() Stats {
	l.mu.RLock()
	live := len(l.objects)
	l.mu.RUnlock()

	return Stats{
		Live:            live,
		References:      l.references.Load(),
		Destroys:        l.destroys.Load(),
		InvalidDestroys: l.invalidDestroys.Load(),
	}
}

// Drain blocks until every scheduled destroy callback has returned.
func (l *Library) Drain() {
	l.pending.Wait()
}

// Version implements ffi.Library.
func (l *Library) Version() int {
	parts := strings.SplitN(l.opts.version, ".", 3)
	v := 0
	scale := []int{10000, 100, 1}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			break
		}
		v += n * scale[i]
	}
	return v
}

// VersionString implements ffi.Library.
func (l *Library) VersionString() string {
	return l.opts.version
}

// object is one entry of the handle table.
type object struct {
	id   uintptr
	refs atomic.Int32

	mu      sync.Mutex
	status  ffi.Status
	surface *surface
	pattern *pattern
}

// setError records status unless the object is already in error.
// Must be called with o.mu held.
func (o *object) setError(status ffi.Status) {
	if o.status == ffi.StatusSuccess {
		o.status = status
	}
}

// attachment is caller data handed back through a destroy callback.
type attachment struct {
	data    ffi.Closure
	destroy ffi.DestroyFunc
}

func (l *Library) insert(o *object) uintptr {
	o.refs.Store(1)

	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	o.id = l.nextID
	l.objects[o.id] = o
	return o.id
}

func (l *Library) lookup(id uintptr) *object {
	if id == 0 {
		return nil
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.objects[id]
}

// reference increments the count of a live object.
func (l *Library) reference(id uintptr) uintptr {
	o := l.lookup(id)
	if o == nil {
		return id
	}
	l.references.Add(1)
	o.refs.Add(1)
	return id
}

// release decrements the count and returns the object to the one caller
// that brought it to exactly zero. The object is removed from the table
// before it is returned. Destroys racing past zero count as invalid.
func (l *Library) release(id uintptr, kind string) *object {
	o := l.lookup(id)
	if o == nil {
		l.invalidDestroy(kind, id)
		return nil
	}
	n := o.refs.Add(-1)
	if n < 0 {
		l.invalidDestroy(kind, id)
		return nil
	}
	l.destroys.Add(1)
	if n > 0 {
		return nil
	}

	l.mu.Lock()
	delete(l.objects, id)
	l.mu.Unlock()
	return o
}

func (l *Library) invalidDestroy(kind string, id uintptr) {
	l.invalidDestroys.Add(1)
	l.opts.logger.Warn("software: destroy of unknown handle", "kind", kind, "handle", id)
}

// runDestructors hands attachments back to their owners. Unless configured
// otherwise this happens on a new goroutine, at an unspecified time after
// the call that dropped the last reference.
func (l *Library) runDestructors(list []attachment) {
	if len(list) == 0 {
		return
	}
	if l.opts.syncDestructors {
		invokeDestructors(list)
		return
	}

	l.pending.Add(1)
	go func() {
		defer l.pending.Done()
		invokeDestructors(list)
	}()
}

func invokeDestructors(list []attachment) {
	for _, a := range list {
		if a.destroy != nil {
			a.destroy(a.data)
		}
	}
}
