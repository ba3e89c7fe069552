// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"github.com/gogpu/cairo/ffi"
)

// RecordingSurfaceCreate implements ffi.Library.
func (l *Library) RecordingSurfaceCreate(content ffi.Content, extents *ffi.Rectangle) ffi.Surface {
	if !validContent(content) {
		return l.errorSurface(ffi.SurfaceTypeRecording, ffi.StatusInvalidContent)
	}
	s := newSurface(ffi.SurfaceTypeRecording, content)
	if extents != nil {
		if extents.Width < 0 || extents.Height < 0 {
			return l.errorSurface(ffi.SurfaceTypeRecording, ffi.StatusInvalidSize)
		}
		r := *extents
		s.extents = &r
	}
	return l.createSurface(s)
}

// RecordingSurfaceGetExtents implements ffi.Library. It reports false for
// unbounded surfaces and surfaces of other types.
func (l *Library) RecordingSurfaceGetExtents(h ffi.Surface) (ffi.Rectangle, bool) {
	var (
		r  ffi.Rectangle
		ok bool
	)
	l.inspect(h, func(o *object, s *surface) {
		if s.typ != ffi.SurfaceTypeRecording {
			o.setError(ffi.StatusSurfaceTypeMismatch)
			return
		}
		if s.extents != nil {
			r, ok = *s.extents, true
		}
	})
	return r, ok
}

// RecordingSurfaceInkExtents implements ffi.Library. Nothing is ever drawn
// by this library, so the ink extents are empty.
func (l *Library) RecordingSurfaceInkExtents(h ffi.Surface) ffi.Rectangle {
	l.inspect(h, func(o *object, s *surface) {
		if s.typ != ffi.SurfaceTypeRecording {
			o.setError(ffi.StatusSurfaceTypeMismatch)
		}
	})
	return ffi.Rectangle{}
}
