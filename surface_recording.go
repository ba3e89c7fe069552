package cairo

import "github.com/gogpu/cairo/ffi"

// RecordingSurface records drawing operations for later replay.
type RecordingSurface struct {
	BaseSurface
}

// NewRecordingSurface creates a recording surface. A nil extents records
// an unbounded area.
func NewRecordingSurface(content ffi.Content, extents *ffi.Rectangle) (*RecordingSurface, error) {
	lib := CurrentLibrary()
	b, err := newBaseSurface(lib, lib.RecordingSurfaceCreate(content, extents))
	if err != nil {
		return nil, err
	}
	return &RecordingSurface{BaseSurface: b}, nil
}

// Extents returns the extents given at creation. It reports false for
// unbounded surfaces.
func (s *RecordingSurface) Extents() (ffi.Rectangle, bool) {
	var (
		r  ffi.Rectangle
		ok bool
	)
	_ = s.h.use(func(raw ffi.Surface) { r, ok = s.lib.RecordingSurfaceGetExtents(raw) })
	return r, ok
}

// InkExtents returns the bounding box of everything recorded so far.
func (s *RecordingSurface) InkExtents() (ffi.Rectangle, error) {
	var r ffi.Rectangle
	if err := s.mutate(func(raw ffi.Surface) { r = s.lib.RecordingSurfaceInkExtents(raw) }); err != nil {
		return ffi.Rectangle{}, err
	}
	return r, nil
}
