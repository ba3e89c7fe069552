// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ffi describes the boundary between this module and a foreign,
// cairo-compatible graphics library.
//
// Everything on the far side of the boundary is reached through [Library].
// Objects are identified by raw handles ([Surface], [Pattern]) whose zero
// value is the foreign null sentinel. Handles are reference counted: the
// library hands out one reference from every create entry point, and each
// reference must be returned exactly once through the matching Destroy
// entry point.
//
// Creation never reports failure by returning null. Instead the library
// returns an object whose embedded [Status] is an error; callers query it
// with the matching Status entry point after construction and after every
// mutating call.
//
// Streaming entry points take a [ReadFunc] or [WriteFunc] together with an
// opaque [Closure] and invoke them repeatedly, possibly long after the
// installing call has returned. Auxiliary data attached through
// SurfaceSetUserData or SurfaceSetMimeData is handed back through a
// [DestroyFunc] exactly once, no earlier than the owning object's teardown
// and on a goroutine chosen by the library.
package ffi
