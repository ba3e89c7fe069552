package cairo

import "github.com/gogpu/cairo/ffi"

// Pattern is any pattern variant: a paint source for drawing.
type Pattern interface {
	// Raw returns the foreign handle. It stays valid while the pattern is
	// open.
	Raw() ffi.Pattern

	Type() ffi.PatternType

	// Status reports the foreign status as an error.
	Status() error

	// Close releases the pattern's reference. It is safe to call more than
	// once.
	Close() error

	base() *BasePattern
}

// BasePattern is the part shared by all patterns. Patterns of types
// without a dedicated variant are adopted as *BasePattern.
type BasePattern struct {
	lib ffi.Library
	h   *handle[ffi.Pattern]
}

func newBasePattern(lib ffi.Library, raw ffi.Pattern) (BasePattern, error) {
	h, err := newHandle[ffi.Pattern](patternRefs{lib: lib}, raw)
	if err != nil {
		return BasePattern{}, err
	}
	return BasePattern{lib: lib, h: h}, nil
}

func (p *BasePattern) base() *BasePattern { return p }

// Raw returns the foreign handle.
func (p *BasePattern) Raw() ffi.Pattern { return p.h.raw() }

// Type returns the type tag of the pattern.
func (p *BasePattern) Type() ffi.PatternType {
	var t ffi.PatternType
	_ = p.h.use(func(raw ffi.Pattern) { t = p.lib.PatternGetType(raw) })
	return t
}

// Status returns nil if the pattern is usable, otherwise a *StatusError
// with the foreign status.
func (p *BasePattern) Status() error {
	return p.h.check()
}

// Close releases the pattern.
func (p *BasePattern) Close() error {
	p.h.close()
	return nil
}

func (p *BasePattern) mutate(fn func(raw ffi.Pattern)) error {
	if err := p.h.use(fn); err != nil {
		return err
	}
	return p.h.check()
}

// query runs a getter reporting its own status.
func (p *BasePattern) query(fn func(raw ffi.Pattern) ffi.Status) error {
	var status ffi.Status
	if err := p.h.use(func(raw ffi.Pattern) { status = fn(raw) }); err != nil {
		return err
	}
	return checkStatus(status)
}

// SetExtend sets how the pattern is drawn outside its natural area.
func (p *BasePattern) SetExtend(extend ffi.Extend) error {
	return p.mutate(func(raw ffi.Pattern) { p.lib.PatternSetExtend(raw, extend) })
}

// Extend returns the mode set by SetExtend.
func (p *BasePattern) Extend() ffi.Extend {
	var e ffi.Extend
	_ = p.h.use(func(raw ffi.Pattern) { e = p.lib.PatternGetExtend(raw) })
	return e
}

// SetFilter sets the resampling filter.
func (p *BasePattern) SetFilter(filter ffi.Filter) error {
	return p.mutate(func(raw ffi.Pattern) { p.lib.PatternSetFilter(raw, filter) })
}

// Filter returns the filter set by SetFilter.
func (p *BasePattern) Filter() ffi.Filter {
	var f ffi.Filter
	_ = p.h.use(func(raw ffi.Pattern) { f = p.lib.PatternGetFilter(raw) })
	return f
}

// SetMatrix sets the transformation from user space to pattern space. The
// matrix must be invertible.
func (p *BasePattern) SetMatrix(m ffi.Matrix) error {
	return p.mutate(func(raw ffi.Pattern) { p.lib.PatternSetMatrix(raw, m) })
}

// Matrix returns the matrix set by SetMatrix.
func (p *BasePattern) Matrix() (ffi.Matrix, error) {
	var m ffi.Matrix
	if err := p.mutate(func(raw ffi.Pattern) { m = p.lib.PatternGetMatrix(raw) }); err != nil {
		return ffi.Matrix{}, err
	}
	return m, nil
}

// SolidPattern is a single translucent color.
type SolidPattern struct {
	BasePattern
}

// NewSolidPattern creates a solid pattern. Components are clamped to
// [0, 1].
func NewSolidPattern(r, g, b, a float64) (*SolidPattern, error) {
	lib := CurrentLibrary()
	bp, err := newBasePattern(lib, lib.PatternCreateRGBA(r, g, b, a))
	if err != nil {
		return nil, err
	}
	return &SolidPattern{BasePattern: bp}, nil
}

// RGBA returns the color of the pattern.
func (p *SolidPattern) RGBA() (r, g, b, a float64, err error) {
	err = p.query(func(raw ffi.Pattern) (status ffi.Status) {
		r, g, b, a, status = p.lib.PatternGetRGBA(raw)
		return status
	})
	return r, g, b, a, err
}

// SurfacePattern paints with the content of a surface.
type SurfacePattern struct {
	BasePattern
}

// NewSurfacePattern creates a pattern painting with s. The pattern holds
// its own reference to the surface, so s may be closed independently.
func NewSurfacePattern(s Surface) (*SurfacePattern, error) {
	if s == nil {
		return nil, ErrInvalidHandle
	}
	sb := s.base()
	var raw ffi.Pattern
	if err := sb.h.use(func(rs ffi.Surface) { raw = sb.lib.PatternCreateForSurface(rs) }); err != nil {
		return nil, err
	}
	bp, err := newBasePattern(sb.lib, raw)
	if err != nil {
		return nil, err
	}
	return &SurfacePattern{BasePattern: bp}, nil
}

// Surface returns the surface the pattern paints with, as its variant. The
// returned value holds its own reference and must be closed by the caller.
func (p *SurfacePattern) Surface() (Surface, error) {
	var raw ffi.Surface
	if err := p.query(func(rp ffi.Pattern) (status ffi.Status) {
		raw, status = p.lib.PatternGetSurface(rp)
		return status
	}); err != nil {
		return nil, err
	}
	return surfaceFromRaw(p.lib, raw, true)
}
