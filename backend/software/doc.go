// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package software is a pure-Go, in-process implementation of the foreign
// graphics library described by package ffi.
//
// It follows the C library's object model closely enough to exercise every
// ownership rule of the binding: objects live in a handle table, carry an
// atomic reference count and a sticky status, are created "in error"
// rather than returned as null, and hand attached user data back through
// destroy callbacks that run on goroutines owned by the library once the
// last reference is dropped.
//
// Rendering is out of scope. Image surfaces hold pixel memory and move it
// in and out of PNG; PDF, PostScript and SVG surfaces produce well-formed
// empty documents, one page per ShowPage, through the installed write
// callback when they are finished.
//
// Importing the package registers it with package backend as "software".
//
//	lib := software.New(software.WithChunkSize(4096))
//	s := lib.ImageSurfaceCreate(ffi.FormatARGB32, 64, 64)
//	defer lib.SurfaceDestroy(s)
package software
