// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"github.com/gogpu/cairo/ffi"
)

// defaultFallbackPPI is the fallback resolution of a new surface.
const defaultFallbackPPI = 300

// surface is the state shared by every surface type.
type surface struct {
	typ      ffi.SurfaceType
	content  ffi.Content
	finished bool

	deviceX, deviceY     float64
	fallbackX, fallbackY float64

	userData []userDataEntry
	mime     map[string]mimeEntry

	image   *imageData
	doc     *document
	extents *ffi.Rectangle // recording surfaces; nil means unbounded

	// target is the referenced parent of a subsurface.
	target ffi.Surface
	rect   ffi.Rectangle
}

type userDataEntry struct {
	key *ffi.UserDataKey
	attachment
}

type mimeEntry struct {
	data []byte
	attachment
}

// mimeSupport lists the MIME types each backend can embed.
var mimeSupport = map[ffi.SurfaceType][]string{
	ffi.SurfaceTypePDF: {"image/jpeg", "image/jp2", "image/g3fax", "application/x-cairo.uuid", "application/x-cairo.jbig2"},
	ffi.SurfaceTypePS:  {"image/jpeg", "image/g3fax", "application/postscript", "application/x-cairo.uuid"},
	ffi.SurfaceTypeSVG: {"image/jpeg", "image/png", "text/x-uri", "application/x-cairo.uuid"},
}

func newSurface(typ ffi.SurfaceType, content ffi.Content) *surface {
	return &surface{
		typ:       typ,
		content:   content,
		fallbackX: defaultFallbackPPI,
		fallbackY: defaultFallbackPPI,
		mime:      make(map[string]mimeEntry),
	}
}

func (l *Library) createSurface(s *surface) ffi.Surface {
	return ffi.Surface(l.insert(&object{surface: s}))
}

// errorSurface returns a fresh surface object created in error. It must be
// destroyed like any other surface.
func (l *Library) errorSurface(typ ffi.SurfaceType, status ffi.Status) ffi.Surface {
	s := newSurface(typ, ffi.ContentColorAlpha)
	s.finished = true
	return ffi.Surface(l.insert(&object{surface: s, status: status}))
}

func (l *Library) surfaceObject(h ffi.Surface) (*object, *surface) {
	o := l.lookup(uintptr(h))
	if o == nil || o.surface == nil {
		return nil, nil
	}
	return o, o.surface
}

// mutate runs fn under the object lock if the surface is healthy and not
// finished. Finished surfaces record StatusSurfaceFinished instead.
func (l *Library) mutate(h ffi.Surface, fn func(o *object, s *surface)) {
	o, s := l.surfaceObject(h)
	if o == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.status != ffi.StatusSuccess {
		return
	}
	if s.finished {
		o.setError(ffi.StatusSurfaceFinished)
		return
	}
	fn(o, s)
}

// inspect runs fn under the object lock.
func (l *Library) inspect(h ffi.Surface, fn func(o *object, s *surface)) {
	o, s := l.surfaceObject(h)
	if o == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	fn(o, s)
}

// SurfaceReference implements ffi.Library.
func (l *Library) SurfaceReference(h ffi.Surface) ffi.Surface {
	return ffi.Surface(l.reference(uintptr(h)))
}

// SurfaceDestroy implements ffi.Library. Dropping the last reference
// finishes the surface, releases a subsurface's parent, and schedules the
// destroy callbacks of all attached data.
func (l *Library) SurfaceDestroy(h ffi.Surface) {
	o := l.release(uintptr(h), "surface")
	if o == nil || o.surface == nil {
		return
	}
	l.finish(o)

	o.mu.Lock()
	s := o.surface
	list := make([]attachment, 0, len(s.userData)+len(s.mime))
	for _, ud := range s.userData {
		list = append(list, ud.attachment)
	}
	for _, m := range s.mime {
		list = append(list, m.attachment)
	}
	s.userData, s.mime = nil, nil
	target := s.target
	s.target = ffi.NullSurface
	o.mu.Unlock()

	if target != ffi.NullSurface {
		l.SurfaceDestroy(target)
	}
	l.runDestructors(list)
}

// SurfaceStatus implements ffi.Library.
func (l *Library) SurfaceStatus(h ffi.Surface) ffi.Status {
	o, _ := l.surfaceObject(h)
	if o == nil {
		return ffi.StatusNullPointer
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// SurfaceGetType implements ffi.Library.
func (l *Library) SurfaceGetType(h ffi.Surface) ffi.SurfaceType {
	_, s := l.surfaceObject(h)
	if s == nil {
		return ffi.SurfaceTypeImage
	}
	return s.typ
}

// SurfaceGetContent implements ffi.Library.
func (l *Library) SurfaceGetContent(h ffi.Surface) ffi.Content {
	_, s := l.surfaceObject(h)
	if s == nil {
		return ffi.ContentColorAlpha
	}
	return s.content
}

// SurfaceSetUserData implements ffi.Library. Replacing or clearing a slot
// hands the previous data back through its destroy callback.
func (l *Library) SurfaceSetUserData(h ffi.Surface, key *ffi.UserDataKey, data ffi.Closure, destroy ffi.DestroyFunc) ffi.Status {
	o, s := l.surfaceObject(h)
	if o == nil || key == nil {
		return ffi.StatusNullPointer
	}

	var old []attachment
	o.mu.Lock()
	idx := -1
	for i, ud := range s.userData {
		if ud.key == key {
			idx = i
			old = append(old, ud.attachment)
			break
		}
	}
	switch {
	case data == 0 && destroy == nil:
		if idx >= 0 {
			s.userData = append(s.userData[:idx], s.userData[idx+1:]...)
		}
	case idx >= 0:
		s.userData[idx].attachment = attachment{data: data, destroy: destroy}
	default:
		s.userData = append(s.userData, userDataEntry{key: key, attachment: attachment{data: data, destroy: destroy}})
	}
	o.mu.Unlock()

	l.runDestructors(old)
	return ffi.StatusSuccess
}

// SurfaceCreateSimilar implements ffi.Library. Image targets produce image
// surfaces; every other target produces a bounded recording surface.
func (l *Library) SurfaceCreateSimilar(h ffi.Surface, content ffi.Content, width, height int) ffi.Surface {
	typ, status := l.similarSource(h)
	if status != ffi.StatusSuccess {
		return l.errorSurface(ffi.SurfaceTypeImage, status)
	}
	if !validContent(content) {
		return l.errorSurface(ffi.SurfaceTypeImage, ffi.StatusInvalidContent)
	}
	if width < 0 || height < 0 {
		return l.errorSurface(ffi.SurfaceTypeImage, ffi.StatusInvalidSize)
	}

	if typ == ffi.SurfaceTypeImage {
		return l.ImageSurfaceCreate(formatForContent(content), width, height)
	}
	return l.RecordingSurfaceCreate(content, &ffi.Rectangle{Width: float64(width), Height: float64(height)})
}

// SurfaceCreateSimilarImage implements ffi.Library.
func (l *Library) SurfaceCreateSimilarImage(h ffi.Surface, format ffi.Format, width, height int) ffi.Surface {
	if _, status := l.similarSource(h); status != ffi.StatusSuccess {
		return l.errorSurface(ffi.SurfaceTypeImage, status)
	}
	return l.ImageSurfaceCreate(format, width, height)
}

func (l *Library) similarSource(h ffi.Surface) (ffi.SurfaceType, ffi.Status) {
	o, s := l.surfaceObject(h)
	if o == nil {
		return 0, ffi.StatusNullPointer
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.status != ffi.StatusSuccess {
		return 0, o.status
	}
	if s.finished {
		return 0, ffi.StatusSurfaceFinished
	}
	return s.typ, ffi.StatusSuccess
}

// SurfaceCreateForRectangle implements ffi.Library. The subsurface holds a
// reference to its target until it is destroyed.
func (l *Library) SurfaceCreateForRectangle(h ffi.Surface, x, y, width, height float64) ffi.Surface {
	_, status := l.similarSource(h)
	if status != ffi.StatusSuccess {
		return l.errorSurface(ffi.SurfaceTypeSubsurface, status)
	}
	if width < 0 || height < 0 {
		return l.errorSurface(ffi.SurfaceTypeSubsurface, ffi.StatusInvalidSize)
	}

	s := newSurface(ffi.SurfaceTypeSubsurface, l.SurfaceGetContent(h))
	s.target = l.SurfaceReference(h)
	s.rect = ffi.Rectangle{X: x, Y: y, Width: width, Height: height}
	return l.createSurface(s)
}

// SurfaceSetDeviceOffset implements ffi.Library.
func (l *Library) SurfaceSetDeviceOffset(h ffi.Surface, x, y float64) {
	l.mutate(h, func(_ *object, s *surface) {
		s.deviceX, s.deviceY = x, y
	})
}

// SurfaceGetDeviceOffset implements ffi.Library.
func (l *Library) SurfaceGetDeviceOffset(h ffi.Surface) (x, y float64) {
	l.inspect(h, func(_ *object, s *surface) {
		x, y = s.deviceX, s.deviceY
	})
	return x, y
}

// SurfaceSetFallbackResolution implements ffi.Library.
func (l *Library) SurfaceSetFallbackResolution(h ffi.Surface, xPPI, yPPI float64) {
	l.mutate(h, func(o *object, s *surface) {
		if xPPI <= 0 || yPPI <= 0 {
			o.setError(ffi.StatusInvalidMatrix)
			return
		}
		s.fallbackX, s.fallbackY = xPPI, yPPI
	})
}

// SurfaceGetFallbackResolution implements ffi.Library.
func (l *Library) SurfaceGetFallbackResolution(h ffi.Surface) (xPPI, yPPI float64) {
	l.inspect(h, func(_ *object, s *surface) {
		xPPI, yPPI = s.fallbackX, s.fallbackY
	})
	return xPPI, yPPI
}

// SurfaceSetMimeData implements ffi.Library. The library keeps data, without
// copying, until the entry is replaced, removed, or the surface is
// destroyed; then destroy is called with closure.
func (l *Library) SurfaceSetMimeData(h ffi.Surface, mimeType string, data []byte, destroy ffi.DestroyFunc, closure ffi.Closure) ffi.Status {
	o, s := l.surfaceObject(h)
	if o == nil {
		return ffi.StatusNullPointer
	}

	o.mu.Lock()
	if o.status != ffi.StatusSuccess {
		status := o.status
		o.mu.Unlock()
		return status
	}
	if s.finished {
		o.setError(ffi.StatusSurfaceFinished)
		o.mu.Unlock()
		return ffi.StatusSurfaceFinished
	}
	old, had := s.mime[mimeType]
	if data == nil {
		delete(s.mime, mimeType)
	} else {
		s.mime[mimeType] = mimeEntry{data: data, attachment: attachment{data: closure, destroy: destroy}}
	}
	o.mu.Unlock()

	if had {
		l.runDestructors([]attachment{old.attachment})
	}
	return ffi.StatusSuccess
}

// SurfaceGetMimeData implements ffi.Library.
func (l *Library) SurfaceGetMimeData(h ffi.Surface, mimeType string) []byte {
	var data []byte
	l.inspect(h, func(_ *object, s *surface) {
		if m, ok := s.mime[mimeType]; ok {
			data = m.data
		}
	})
	return data
}

// SurfaceSupportsMimeType implements ffi.Library.
func (l *Library) SurfaceSupportsMimeType(h ffi.Surface, mimeType string) bool {
	_, s := l.surfaceObject(h)
	if s == nil {
		return false
	}
	if s.typ == ffi.SurfaceTypeSubsurface {
		return l.SurfaceSupportsMimeType(s.target, mimeType)
	}
	for _, m := range mimeSupport[s.typ] {
		if m == mimeType {
			return true
		}
	}
	return false
}

// SurfaceHasShowTextGlyphs implements ffi.Library. Only PDF output keeps
// text and cluster data.
func (l *Library) SurfaceHasShowTextGlyphs(h ffi.Surface) bool {
	_, s := l.surfaceObject(h)
	if s == nil {
		return false
	}
	if s.typ == ffi.SurfaceTypeSubsurface {
		return l.SurfaceHasShowTextGlyphs(s.target)
	}
	return s.typ == ffi.SurfaceTypePDF
}

// SurfaceMarkDirty implements ffi.Library.
func (l *Library) SurfaceMarkDirty(h ffi.Surface) {
	l.mutate(h, func(*object, *surface) {})
}

// SurfaceMarkDirtyRectangle implements ffi.Library.
func (l *Library) SurfaceMarkDirtyRectangle(h ffi.Surface, x, y, width, height int) {
	l.mutate(h, func(o *object, _ *surface) {
		if width < 0 || height < 0 {
			o.setError(ffi.StatusInvalidSize)
		}
	})
}

// SurfaceShowPage implements ffi.Library.
func (l *Library) SurfaceShowPage(h ffi.Surface) {
	l.mutate(h, func(_ *object, s *surface) {
		if s.doc != nil {
			s.doc.showPage()
		}
	})
}

// SurfaceCopyPage implements ffi.Library. Nothing is drawn on pages, so a
// copied page is identical to a shown one.
func (l *Library) SurfaceCopyPage(h ffi.Surface) {
	l.SurfaceShowPage(h)
}

// SurfaceFlush implements ffi.Library. Flushing a finished surface is a no-op.
func (l *Library) SurfaceFlush(h ffi.Surface) {
	l.inspect(h, func(*object, *surface) {})
}

// SurfaceFinish implements ffi.Library. Document surfaces emit their output
// through the installed sink; a sink failure is recorded on the surface.
func (l *Library) SurfaceFinish(h ffi.Surface) {
	o, _ := l.surfaceObject(h)
	if o == nil {
		return
	}
	l.finish(o)
}

func (l *Library) finish(o *object) {
	o.mu.Lock()
	s := o.surface
	if s.finished {
		o.mu.Unlock()
		return
	}
	s.finished = true
	if s.doc == nil || o.status != ffi.StatusSuccess {
		o.mu.Unlock()
		return
	}
	out, status := s.doc.render()
	dst := s.doc.sink
	o.mu.Unlock()

	if status == ffi.StatusSuccess {
		status = l.emit(dst, out)
	}
	if status != ffi.StatusSuccess {
		o.mu.Lock()
		o.setError(status)
		o.mu.Unlock()
	}
}

func validContent(c ffi.Content) bool {
	return c == ffi.ContentColor || c == ffi.ContentAlpha || c == ffi.ContentColorAlpha
}

func formatForContent(c ffi.Content) ffi.Format {
	switch c {
	case ffi.ContentColor:
		return ffi.FormatRGB24
	case ffi.ContentAlpha:
		return ffi.FormatA8
	default:
		return ffi.FormatARGB32
	}
}
