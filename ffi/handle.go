// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ffi

// Handle is the constraint satisfied by every raw handle kind.
type Handle interface {
	~uintptr
}

// Surface is a raw handle to a foreign surface object.
type Surface uintptr

// Pattern is a raw handle to a foreign pattern object.
type Pattern uintptr

// Null sentinels.
const (
	NullSurface Surface = 0
	NullPattern Pattern = 0
)

// Closure is an opaque value passed back unchanged to callbacks.
type Closure uintptr

// ReadFunc fills data completely from a local source.
// It returns StatusSuccess or StatusReadError.
type ReadFunc func(closure Closure, data []byte) Status

// WriteFunc drains data completely into a local sink.
// It returns StatusSuccess or StatusWriteError.
type WriteFunc func(closure Closure, data []byte) Status

// DestroyFunc is invoked by the library when it no longer references the
// data it was given alongside the function.
type DestroyFunc func(data Closure)

// UserDataKey identifies a user-data slot. Only its address is significant.
type UserDataKey struct {
	_ byte
}

//go:generate mockgen -destination=../internal/mock/refcounter.go -package=mock github.com/gogpu/cairo/ffi Refcounter

// Refcounter is the reference-counting vocabulary shared by every handle
// kind. Reference returns the handle it was given.
type Refcounter[H Handle] interface {
	Reference(h H) H
	Destroy(h H)
	Status(h H) Status
}
